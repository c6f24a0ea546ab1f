package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	t.Run("Should accept every known wire value", func(t *testing.T) {
		for _, s := range []string{"UNKOWN", "REQUEST", "CANCELLED", "OK", "OKR"} {
			status, ok := ParseBookingStatus(s)
			require.True(t, ok, "expected %q to parse", s)
			assert.Equal(t, BookingStatus(s), status)
		}
	})
	t.Run("Should reject unknown values", func(t *testing.T) {
		_, ok := ParseBookingStatus("PENDING")
		assert.False(t, ok)
	})
	t.Run("Should reject the corrected spelling of unknown", func(t *testing.T) {
		// Stored documents use the legacy misspelling only.
		_, ok := ParseBookingStatus("UNKNOWN")
		assert.False(t, ok)
	})
}

func TestProductConstructors(t *testing.T) {
	t.Run("Should keep tag and variant consistent for every type", func(t *testing.T) {
		products := []Product{
			NewHotelProduct("room", HotelDetails{RoomLabel: "deluxe"}),
			NewServiceProduct("transfer", ServiceDetails{Service: "transfer"}),
			NewInterestProduct("interest", InterestDetails{Interest: 1.5}),
			NewBillingProduct("billing", BillingDetails{Amount: 100}),
			NewActivityProduct("diving", ActivityDetails{Activity: "diving"}),
		}
		for i := range products {
			p := &products[i]
			require.NotNil(t, p.Details(), "type %s has no active variant", p.Type)
			assert.Equal(t, StatusRequest, p.Status)
		}
	})
	t.Run("Should expose only the active variant", func(t *testing.T) {
		p := NewActivityProduct("diving", ActivityDetails{Activity: "diving", Option: "am"})
		assert.Equal(t, ProductTypeActivity, p.Type)
		assert.Nil(t, p.Hotel)
		assert.Nil(t, p.Service)
		assert.Nil(t, p.Interest)
		assert.Nil(t, p.Billing)
		require.NotNil(t, p.Activity)
		assert.Equal(t, "diving", p.Activity.Activity)
	})
}
