package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions_Defaults(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://localhost:27017", Database: "shipment_tracker"})

	require.NotNil(t, opts.AppName)
	assert.Equal(t, "shipment-tracker", *opts.AppName)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, defaultTimeout, *opts.ServerSelectionTimeout)
	assert.Equal(t, []string{"localhost:27017"}, opts.Hosts)
}

func TestClientOptions_Overrides(t *testing.T) {
	opts := clientOptions(Config{
		URI:     "mongodb://db.internal:27018",
		AppName: "tracker-worker",
		Timeout: 2 * time.Second,
	})

	assert.Equal(t, "tracker-worker", *opts.AppName)
	assert.Equal(t, 2*time.Second, *opts.ServerSelectionTimeout)
	assert.Equal(t, []string{"db.internal:27018"}, opts.Hosts)
}
