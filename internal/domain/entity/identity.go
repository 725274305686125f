package entity

// Identity is the provider-owned representation of an authenticated user.
// It is issued and verified by the identity provider; this application only
// reads it and never writes back.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}
