// Package denorm reshapes raw legacy booking records into the normalized
// Booking aggregate, flattening nested per-user and per-passenger activity
// data into standalone Product entities.
package denorm

import (
	"fmt"
	"time"

	"github.com/apollotravel/apollo-migration/engine/core"
	"github.com/apollotravel/apollo-migration/engine/migration/decode"
	"github.com/apollotravel/apollo-migration/engine/migration/model"
)

// Clock supplies the denormalizer's notion of now. Update and create
// timestamps are always overwritten with it, regardless of source values.
type Clock func() time.Time

// Denormalizer turns one raw booking record into a Booking aggregate with a
// flattened product list. It is stateless and safe for concurrent use.
type Denormalizer struct {
	now Clock
}

// New constructs a Denormalizer. A nil clock defaults to time.Now in UTC.
func New(now Clock) *Denormalizer {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Denormalizer{now: now}
}

// Denormalize decodes the record into a Booking, synthesizes the hotel
// product, flattens every user and passenger activity into Activity products
// and clears the transient activity lists. Malformed fields never abort
// processing; only key generation can fail.
func (d *Denormalizer) Denormalize(rec decode.Record) (*model.Booking, error) {
	now := d.now()
	booking := d.decodeBooking(rec, now)

	products := make([]model.Product, 0, 1)
	products = append(products, d.hotelProduct(rec))

	for i := range booking.Users {
		user := &booking.Users[i]
		for _, activity := range user.Activities {
			products = append(products, model.NewActivityProduct(activity.Activity, model.ActivityDetails{
				Activity:     activity.Activity,
				Option:       activity.Option,
				Price:        activity.Price,
				UserKey:      user.Key,
				PassengerKey: "",
			}))
		}
	}

	for i := range booking.Passengers {
		passenger := &booking.Passengers[i]
		if passenger.Key == "" {
			key, err := core.NewID()
			if err != nil {
				return nil, fmt.Errorf("generating passenger key: %w", err)
			}
			passenger.Key = key.String()
		}
		for _, activity := range passenger.Activities {
			products = append(products, model.NewActivityProduct(activity.Activity, model.ActivityDetails{
				Activity:     activity.Activity,
				Option:       activity.Option,
				Price:        activity.Price,
				UserKey:      passenger.UserKey,
				PassengerKey: passenger.Key,
			}))
		}
	}

	// Activities live only as Products from here on.
	for i := range booking.Users {
		booking.Users[i].Activities = []model.ActivityDetails{}
	}
	for i := range booking.Passengers {
		booking.Passengers[i].Activities = []model.ActivityDetails{}
	}

	booking.Products = products
	return booking, nil
}

func (d *Denormalizer) decodeBooking(rec decode.Record, now time.Time) *model.Booking {
	return &model.Booking{
		ID:                 decode.Uint32(rec, "id", 0),
		Status:             decodeStatus(rec),
		UpdatedBy:          decode.String(rec, "updatedBy", ""),
		UpdateTime:         now,
		CreatedBy:          decode.String(rec, "createdBy", ""),
		CreateTime:         now,
		Salary:             decode.Float64(rec, "salary", 0),
		GroupID:            decode.String(rec, "groupId", ""),
		GrossRoomPrice:     decode.Float64(rec, "grossRoomPrice", 0),
		NetRoomPrice:       decode.Float64(rec, "netRoomPrice", 0),
		SegmentID:          decode.Uint32(rec, "segmentId", 0),
		SubSegmentID:       decode.Uint32(rec, "subSegmentId", 0),
		Users:              decode.List[model.User](rec, "users"),
		Passengers:         decode.List[model.Passenger](rec, "passengers"),
		Products:           decode.List[model.Product](rec, "products"),
		Notes:              decode.List[model.Note](rec, "notes"),
		History:            decode.List[model.HistoryNote](rec, "history"),
		FlightDetails:      valueOrZero(decode.Object[model.FlightDetails](rec, "flightDetails")),
		CcTransactionData:  valueOrZero(decode.Object[model.CcTransactionData](rec, "ccTransactionData")),
		SubsidyComment:     decode.String(rec, "subsidyComment", ""),
		ExternalOrderID:    decode.String(rec, "externalOrderId", ""),
		Period:             decode.String(rec, "period", ""),
		Category:           decode.String(rec, "category", ""),
		Tmura:              rec["tmura"],
		CcPayments:         decode.Int(rec, "ccPayments", 0),
		SalaryPayments:     decode.Int(rec, "salaryPayments", 0),
		BookingTags:        decode.StringSlice(rec, "bookingTags"),
		PeriodEntitledDays: decode.Uint32(rec, "periodEntitledDays", 0),
	}
}

// hotelProduct synthesizes the one Hotel product every booking carries, even
// when the source record holds no hotel fields at all.
func (d *Denormalizer) hotelProduct(rec decode.Record) model.Product {
	var pax any = map[string]any{}
	if v, ok := rec["pax"]; ok && v != nil {
		pax = v
	}
	return model.NewHotelProduct("", model.HotelDetails{
		AtlantisHotelID: decode.Uint32(rec, "hotelId", 0),
		Pax:             pax,
		Start:           decode.DateAt(rec, "start"),
		End:             decode.DateAt(rec, "end"),
		RoomLabel:       decode.String(rec, "roomLabel", ""),
		Rooms:           []any{},
	})
}

// decodeStatus falls back to REQUEST for absent or unrecognized values.
func decodeStatus(rec decode.Record) model.BookingStatus {
	raw := decode.String(rec, "status", string(model.StatusRequest))
	if status, ok := model.ParseBookingStatus(raw); ok {
		return status
	}
	return model.StatusRequest
}

func valueOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
