package model

import "time"

// Document type tags used as rule-registry keys and storage discriminators.
const (
	DocTypeGroupBookings = "GroupBookings"
	DocTypeBooking3      = "Booking3"
)

// BookingStatus is the lifecycle state of a booking. Wire values keep the
// legacy spelling of UNKOWN for compatibility with stored documents.
type BookingStatus string

const (
	StatusUnknown   BookingStatus = "UNKOWN"
	StatusRequest   BookingStatus = "REQUEST"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusOk        BookingStatus = "OK"
	StatusOkReduced BookingStatus = "OKR"
)

// ParseBookingStatus maps a wire string onto a BookingStatus. Unrecognized
// values report ok=false so callers can apply their own default.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusUnknown, StatusRequest, StatusCancelled, StatusOk, StatusOkReduced:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// PaymentType identifies how a booking participant settles their share.
type PaymentType string

const (
	PaymentSalary           PaymentType = "Salary"
	PaymentTodayCreditCard  PaymentType = "TodayCreditCard"
	PaymentFuturePayment    PaymentType = "FuturePayment"
	PaymentFutureCreditCard PaymentType = "FutureCreditCard"
	PaymentNone             PaymentType = "NoPayment"
)

// Booking is the normalized aggregate produced by the denormalizer. It is
// created fresh per source record and never mutated after denormalization.
type Booking struct {
	ID                 uint32            `json:"id"`
	Status             BookingStatus     `json:"status"`
	UpdatedBy          string            `json:"updatedBy"`
	UpdateTime         time.Time         `json:"updateTime"`
	CreatedBy          string            `json:"createdBy"`
	CreateTime         time.Time         `json:"createTime"`
	Salary             float64           `json:"salary"`
	GroupID            string            `json:"groupId"`
	GrossRoomPrice     float64           `json:"grossRoomPrice"`
	NetRoomPrice       float64           `json:"netRoomPrice"`
	SegmentID          uint32            `json:"segmentId"`
	SubSegmentID       uint32            `json:"subSegmentId"`
	Users              []User            `json:"users"`
	Passengers         []Passenger       `json:"passengers"`
	Products           []Product         `json:"products"`
	Notes              []Note            `json:"notes"`
	History            []HistoryNote     `json:"history"`
	FlightDetails      FlightDetails     `json:"flightDetails"`
	CcTransactionData  CcTransactionData `json:"ccTransactionData"`
	SubsidyComment     string            `json:"subsidyComment"`
	ExternalOrderID    string            `json:"externalOrderId"`
	Period             string            `json:"period"`
	Category           string            `json:"category"`
	Tmura              any               `json:"tmura"`
	CcPayments         int               `json:"ccPayments"`
	SalaryPayments     int               `json:"salaryPayments"`
	BookingTags        []string          `json:"bookingTags"`
	PeriodEntitledDays uint32            `json:"periodEntitledDays"`
}

// User is a booking participant. Activities is transient: it is populated
// from legacy documents and emptied by the denormalizer once every activity
// has been flattened into a Product.
type User struct {
	Confirmed       bool                `json:"confirmed"`
	Key             string              `json:"key"`
	SpecialRequests []string            `json:"specialRequests"`
	ClientPrice     any                 `json:"clientPrice"`
	BasePrice       float64             `json:"basePrice"`
	PaymentType     PaymentType         `json:"paymentType"`
	ClientTotal     float64             `json:"clientTotal"`
	Requests        []string            `json:"requests"`
	RequestSections map[string][]string `json:"requestSections"`
	Activities      []ActivityDetails   `json:"activities"`
}

// Passenger travels under a User. Key is guaranteed non-empty after
// denormalization; a fresh one is minted when the source omits it.
type Passenger struct {
	Key         string            `json:"key"`
	UserKey     string            `json:"userKey"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	DateOfBirth time.Time         `json:"dateOfBirth"`
	PassportNo  string            `json:"passportNo"`
	PassportExp time.Time         `json:"passportExp"`
	Activities  []ActivityDetails `json:"activities"`
}

// Note is a free-form remark attached by back-office staff.
type Note struct {
	ID            string    `json:"id"`
	CreatedBy     string    `json:"createdBy"`
	CreatedTime   time.Time `json:"createdTime"`
	Note          string    `json:"note"`
	IsOperations  bool      `json:"isOperations"`
	IsSalesJunior bool      `json:"isSalesJunior"`
	IsSalesSenior bool      `json:"isSalesSenior"`
}

// HistoryNote records who touched the booking and when.
type HistoryNote struct {
	EmployeeEmail string    `json:"employeeEmail"`
	Time          time.Time `json:"time"`
	Notes         []string  `json:"notes"`
}

type FlightDetails struct {
	Arrival   FlightArrivalDetails   `json:"arrival"`
	Departure FlightDepartureDetails `json:"departure"`
}

type FlightArrivalDetails struct {
	FlightDate   string `json:"flightDate"`
	FlightNumber string `json:"flightNumber"`
	From         string `json:"from"`
	To           string `json:"to"`
	LandingTime  string `json:"landingTime"`
}

type FlightDepartureDetails struct {
	FlightDate   string `json:"flightDate"`
	FlightNumber string `json:"flightNumber"`
	From         string `json:"from"`
	Destination  string `json:"destination"`
	TakeoffTime  string `json:"takeoffTime"`
}

// CcTransactionData captures the credit-card transaction linked to a booking.
type CcTransactionData struct {
	TransactionID string      `json:"transactionId"`
	Amount        float64     `json:"amount"`
	PaymentType   PaymentType `json:"paymentType"`
}

// CancellationDetails is present on cancelled products only.
type CancellationDetails struct {
	CancellationFeeNet   *float64  `json:"cancellationFeeNet"`
	CancellationFeeGross *float64  `json:"cancellationFeeGross"`
	CancelledTime        time.Time `json:"cancelledTime"`
	CancellationReason   string    `json:"cancellationReason"`
}
