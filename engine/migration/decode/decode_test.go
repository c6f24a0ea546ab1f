package decode

import (
	"testing"
	"time"

	"github.com/apollotravel/apollo-migration/engine/migration/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalars(t *testing.T) {
	rec := Record{
		"name":   "group tour",
		"id":     float64(42),
		"salary": "1500.50",
		"nil":    nil,
		"bogus":  []any{"not", "a", "scalar"},
	}
	t.Run("Should return default for absent keys", func(t *testing.T) {
		assert.Equal(t, "fallback", String(rec, "missing", "fallback"))
		assert.Equal(t, uint32(7), Uint32(rec, "missing", 7))
		assert.Equal(t, 7, Int(rec, "missing", 7))
		assert.Equal(t, 7.5, Float64(rec, "missing", 7.5))
	})
	t.Run("Should return default for null values", func(t *testing.T) {
		assert.Equal(t, "fallback", String(rec, "nil", "fallback"))
		assert.Equal(t, uint32(0), Uint32(rec, "nil", 0))
	})
	t.Run("Should coerce JSON numbers to integers", func(t *testing.T) {
		assert.Equal(t, uint32(42), Uint32(rec, "id", 0))
		assert.Equal(t, 42, Int(rec, "id", 0))
	})
	t.Run("Should coerce numeric strings to floats", func(t *testing.T) {
		assert.Equal(t, 1500.50, Float64(rec, "salary", 0))
	})
	t.Run("Should fall back on uncoercible values", func(t *testing.T) {
		assert.Equal(t, uint32(9), Uint32(rec, "name", 9))
		assert.Equal(t, "fallback", String(rec, "bogus", "fallback"))
	})
}

func TestStringSlice(t *testing.T) {
	t.Run("Should pass through typed slices", func(t *testing.T) {
		rec := Record{"tags": []string{"a", "b"}}
		assert.Equal(t, []string{"a", "b"}, StringSlice(rec, "tags"))
	})
	t.Run("Should coerce heterogeneous slices", func(t *testing.T) {
		rec := Record{"tags": []any{"a", "b"}}
		assert.Equal(t, []string{"a", "b"}, StringSlice(rec, "tags"))
	})
	t.Run("Should return empty slice when absent", func(t *testing.T) {
		assert.Empty(t, StringSlice(Record{}, "tags"))
	})
}

func TestList(t *testing.T) {
	t.Run("Should return empty slice when key is absent or null", func(t *testing.T) {
		assert.Empty(t, List[model.User](Record{}, "users"))
		assert.Empty(t, List[model.User](Record{"users": nil}, "users"))
	})
	t.Run("Should pass through an already-typed slice", func(t *testing.T) {
		users := []model.User{{Key: "u1"}, {Key: "u2"}}
		got := List[model.User](Record{"users": users}, "users")
		assert.Equal(t, users, got)
	})
	t.Run("Should decode a JSON string blob", func(t *testing.T) {
		rec := Record{"activities": `[{"activity":"diving","option":"am","price":50},{"activity":"hiking","option":"pm","price":30}]`}
		got := List[model.ActivityDetails](rec, "activities")
		require.Len(t, got, 2)
		assert.Equal(t, "diving", got[0].Activity)
		assert.Equal(t, "am", got[0].Option)
		assert.Equal(t, 50.0, got[0].Price)
		assert.Equal(t, "hiking", got[1].Activity)
	})
	t.Run("Should decode each entry of a heterogeneous list", func(t *testing.T) {
		rec := Record{"users": []any{
			map[string]any{"key": "u1", "basePrice": 100},
			map[string]any{"key": "u2", "basePrice": "250.5"},
		}}
		got := List[model.User](rec, "users")
		require.Len(t, got, 2)
		assert.Equal(t, "u1", got[0].Key)
		assert.Equal(t, 100.0, got[0].BasePrice)
		assert.Equal(t, 250.5, got[1].BasePrice)
	})
	t.Run("Should drop entries that fail to decode", func(t *testing.T) {
		rec := Record{"users": []any{
			map[string]any{"key": "u1"},
			"complete garbage",
			map[string]any{"key": "u2"},
		}}
		got := List[model.User](rec, "users")
		require.Len(t, got, 2)
		assert.Equal(t, "u1", got[0].Key)
		assert.Equal(t, "u2", got[1].Key)
	})
	t.Run("Should return empty slice for a malformed JSON blob", func(t *testing.T) {
		rec := Record{"users": `{"not":"a list"`}
		assert.Empty(t, List[model.User](rec, "users"))
	})
	t.Run("Should decode nested date fields tolerantly", func(t *testing.T) {
		rec := Record{"passengers": []any{
			map[string]any{"key": "p1", "dateOfBirth": "1990-05-01"},
		}}
		got := List[model.Passenger](rec, "passengers")
		require.Len(t, got, 1)
		assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), got[0].DateOfBirth)
	})
}

func TestObject(t *testing.T) {
	t.Run("Should return nil when key is absent or null", func(t *testing.T) {
		assert.Nil(t, Object[model.FlightDetails](Record{}, "flightDetails"))
		assert.Nil(t, Object[model.FlightDetails](Record{"flightDetails": nil}, "flightDetails"))
	})
	t.Run("Should pass through an already-typed value", func(t *testing.T) {
		fd := model.FlightDetails{Arrival: model.FlightArrivalDetails{FlightNumber: "LY101"}}
		got := Object[model.FlightDetails](Record{"flightDetails": fd}, "flightDetails")
		require.NotNil(t, got)
		assert.Equal(t, "LY101", got.Arrival.FlightNumber)
	})
	t.Run("Should decode a nested map", func(t *testing.T) {
		rec := Record{"ccTransactionData": map[string]any{
			"transactionId": "tx-1",
			"amount":        99.9,
		}}
		got := Object[model.CcTransactionData](rec, "ccTransactionData")
		require.NotNil(t, got)
		assert.Equal(t, "tx-1", got.TransactionID)
		assert.Equal(t, 99.9, got.Amount)
	})
	t.Run("Should decode a JSON string blob", func(t *testing.T) {
		rec := Record{"flightDetails": `{"arrival":{"flightNumber":"LY101","from":"TLV"}}`}
		got := Object[model.FlightDetails](rec, "flightDetails")
		require.NotNil(t, got)
		assert.Equal(t, "LY101", got.Arrival.FlightNumber)
		assert.Equal(t, "TLV", got.Arrival.From)
	})
	t.Run("Should return nil for a malformed JSON blob", func(t *testing.T) {
		rec := Record{"flightDetails": `{"arrival":`}
		assert.Nil(t, Object[model.FlightDetails](rec, "flightDetails"))
	})
}
