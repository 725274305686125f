// Package firestore contains the concrete implementation of the persistence
// layer using Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"glowdesk/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Client wraps the Firestore client together with the application instance ID
// that namespaces every document path. The ID comes from configuration, never
// from caller input.
type Client struct {
	fs    *firestore.Client
	appID string
}

// New creates the Firestore client mapping
func New(ctx context.Context, params Params) (*Client, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opts := []option.ClientOption{}
	if params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	fs, err := firestore.NewClient(ctx, params.Config.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	client := &Client{
		fs:    fs,
		appID: params.Config.App.ID,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return fs.Close()
		},
	})

	return client, nil
}

// Profiles returns the per-instance profile collection.
func (c *Client) Profiles() *firestore.CollectionRef {
	return c.fs.Collection(profileCollectionPath(c.appID))
}

// Salons returns the per-instance shared salon collection.
func (c *Client) Salons() *firestore.CollectionRef {
	return c.fs.Collection(salonCollectionPath(c.appID))
}

// Staff returns the staff subcollection scoped under a salon.
func (c *Client) Staff(salonID string) *firestore.CollectionRef {
	return c.fs.Collection(staffCollectionPath(c.appID, salonID))
}

func profileCollectionPath(appID string) string {
	return "apps/" + appID + "/profiles"
}

func salonCollectionPath(appID string) string {
	return "apps/" + appID + "/salons"
}

func staffCollectionPath(appID, salonID string) string {
	return salonCollectionPath(appID) + "/" + salonID + "/staff"
}
