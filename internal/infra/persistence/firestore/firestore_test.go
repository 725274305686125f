package firestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionPaths(t *testing.T) {
	assert.Equal(t, "apps/glow-1/profiles", profileCollectionPath("glow-1"))
	assert.Equal(t, "apps/glow-1/salons", salonCollectionPath("glow-1"))
	assert.Equal(t, "apps/glow-1/salons/salon-7/staff", staffCollectionPath("glow-1", "salon-7"))
}
