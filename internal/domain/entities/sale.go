package entities

import "time"

const (
	// UnknownRoute is the route category used for sales without a route label.
	UnknownRoute = "Unknown"
	// NoFolio is rendered in detail views for sales without a folio.
	NoFolio = "-"
)

// Sale is one recorded ticket sale (venta).
//
// Storage model:
//   - PK: id
//   - created_at drives every date filter and grouping key (always UTC)
//
// Amount is optional: a nil amount counts as zero in every aggregate. Negative
// amounts are kept as-is.
type Sale struct {
	ID         string    `json:"id"`
	Folio      string    `json:"folio,omitempty"`
	UserID     int64     `json:"userId,omitempty"`
	PaymentID  int64     `json:"paymentId,omitempty"`
	ScheduleID int64     `json:"scheduleId,omitempty"`
	RateID     int64     `json:"rateId,omitempty"`
	RouteLabel string    `json:"routeLabel,omitempty"`
	Status     string    `json:"status,omitempty"`
	Amount     *float64  `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EffectiveAmount returns the amount, or 0 when it was never recorded.
func (s Sale) EffectiveAmount() float64 {
	if s.Amount == nil {
		return 0
	}
	return *s.Amount
}

// Route returns the route label, or UnknownRoute when it is empty. Whitespace
// labels are kept as their own route.
func (s Sale) Route() string {
	if s.RouteLabel == "" {
		return UnknownRoute
	}
	return s.RouteLabel
}

// DisplayFolio returns the folio, or NoFolio when it is empty.
func (s Sale) DisplayFolio() string {
	if s.Folio == "" {
		return NoFolio
	}
	return s.Folio
}
