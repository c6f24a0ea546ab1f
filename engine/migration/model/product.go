package model

import "time"

// ProductType discriminates the Product detail variants.
type ProductType string

const (
	ProductTypeHotel    ProductType = "Hotel"
	ProductTypeService  ProductType = "Service"
	ProductTypeInterest ProductType = "Interest"
	ProductTypeBilling  ProductType = "Billing"
	ProductTypeActivity ProductType = "Activity"
)

// Product is a tagged union: Type selects exactly one of the detail pointers.
// Products are only built through the New*Product constructors, which keep the
// tag and the active variant consistent.
type Product struct {
	Name                string               `json:"name"`
	Status              BookingStatus        `json:"status"`
	Type                ProductType          `json:"type"`
	Hotel               *HotelDetails        `json:"hotelDetails,omitempty"`
	Service             *ServiceDetails      `json:"serviceDetails,omitempty"`
	Interest            *InterestDetails     `json:"interestDetails,omitempty"`
	Billing             *BillingDetails      `json:"billingDetails,omitempty"`
	Activity            *ActivityDetails     `json:"activityDetails,omitempty"`
	CancellationDetails *CancellationDetails `json:"cancellationDetails,omitempty"`
	NetAdjustment       float64              `json:"netAdjustment"`
	UpdatedBy           string               `json:"updatedBy"`
	UpdateTime          time.Time            `json:"updateTime"`
	CreatedBy           string               `json:"createdBy"`
	CreateTime          time.Time            `json:"createTime"`
}

// HotelDetails describes the room component of a booking.
type HotelDetails struct {
	Apollo             bool      `json:"apollo"`
	AtlantisHotelID    uint32    `json:"atlantisHotelId"`
	BookingIDFromHotel string    `json:"bookingIdFromHotel"`
	HotelSegmentID     uint32    `json:"hotelSegmentId"`
	Rooms              []any     `json:"rooms"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
	Pax                any       `json:"pax"`
	RoomLabel          string    `json:"roomLabel"`
}

// ServiceDetails describes an ancillary purchased service.
type ServiceDetails struct {
	Service string  `json:"service"`
	Price   float64 `json:"price"`
}

// InterestDetails carries an interest charge applied to the booking.
type InterestDetails struct {
	Interest float64 `json:"interest"`
}

// BillingDetails carries a standalone billing adjustment.
type BillingDetails struct {
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
}

// ActivityDetails is both the transient activity entry carried by users and
// passengers in legacy documents and the detail variant of Activity products.
// UserKey and PassengerKey are only populated once flattened into a Product.
type ActivityDetails struct {
	Activity     string  `json:"activity"`
	Option       string  `json:"option"`
	Price        float64 `json:"price"`
	UserKey      string  `json:"userKey"`
	PassengerKey string  `json:"passengerKey"`
}

// NewHotelProduct builds a Hotel-typed product around the given details.
func NewHotelProduct(name string, details HotelDetails) Product {
	return newProduct(name, ProductTypeHotel, Product{Hotel: &details})
}

// NewServiceProduct builds a Service-typed product around the given details.
func NewServiceProduct(name string, details ServiceDetails) Product {
	return newProduct(name, ProductTypeService, Product{Service: &details})
}

// NewInterestProduct builds an Interest-typed product around the given details.
func NewInterestProduct(name string, details InterestDetails) Product {
	return newProduct(name, ProductTypeInterest, Product{Interest: &details})
}

// NewBillingProduct builds a Billing-typed product around the given details.
func NewBillingProduct(name string, details BillingDetails) Product {
	return newProduct(name, ProductTypeBilling, Product{Billing: &details})
}

// NewActivityProduct builds an Activity-typed product around the given details.
func NewActivityProduct(name string, details ActivityDetails) Product {
	return newProduct(name, ProductTypeActivity, Product{Activity: &details})
}

func newProduct(name string, typ ProductType, variant Product) Product {
	p := variant
	p.Name = name
	p.Status = StatusRequest
	p.Type = typ
	return p
}

// Details returns the active detail variant for the product's type.
func (p *Product) Details() any {
	switch p.Type {
	case ProductTypeHotel:
		return p.Hotel
	case ProductTypeService:
		return p.Service
	case ProductTypeInterest:
		return p.Interest
	case ProductTypeBilling:
		return p.Billing
	case ProductTypeActivity:
		return p.Activity
	default:
		return nil
	}
}
