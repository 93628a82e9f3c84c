package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

func TestListFilter_Empty(t *testing.T) {
	assert.Empty(t, listFilter(ports.ListShipmentsFilter{}))
}

func TestListFilter_Status(t *testing.T) {
	f := listFilter(ports.ListShipmentsFilter{Status: domain.StatusInTransit})
	assert.Equal(t, bson.M{"status": "In Transit"}, f)
}

func TestListFilter_QueryIsLiteralAndCaseInsensitive(t *testing.T) {
	f := listFilter(ports.ListShipmentsFilter{Query: "SH-10.3"})

	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	want := primitive.Regex{Pattern: `SH-10\.3`, Options: "i"}
	for i, field := range []string{"_id", "origin", "destination"} {
		clause, ok := or[i].(bson.M)
		require.True(t, ok)
		assert.Equal(t, want, clause[field])
	}
}
