package request

import (
	"time"

	"rutvans_api/internal/domain/entities"
	"rutvans_api/internal/usecase"
)

// SaleRequest is the body of POST and PUT /api/ventas. Every field is
// optional; on PUT only the fields present are changed.
type SaleRequest struct {
	Folio      *string    `json:"folio"`
	UserID     *int64     `json:"userId"`
	PaymentID  *int64     `json:"paymentId"`
	ScheduleID *int64     `json:"scheduleId"`
	RateID     *int64     `json:"rateId"`
	RouteLabel *string    `json:"routeLabel"`
	Status     *string    `json:"status"`
	Amount     *float64   `json:"amount"`
	CreatedAt  *time.Time `json:"createdAt"`
}

func (r SaleRequest) ToEntity() entities.Sale {
	s := entities.Sale{
		Folio:      deref(r.Folio),
		UserID:     deref(r.UserID),
		PaymentID:  deref(r.PaymentID),
		ScheduleID: deref(r.ScheduleID),
		RateID:     deref(r.RateID),
		RouteLabel: deref(r.RouteLabel),
		Status:     deref(r.Status),
		Amount:     r.Amount,
	}
	if r.CreatedAt != nil {
		s.CreatedAt = *r.CreatedAt
	}
	return s
}

func (r SaleRequest) ToPatch() usecase.SalePatch {
	return usecase.SalePatch{
		Folio:      r.Folio,
		UserID:     r.UserID,
		PaymentID:  r.PaymentID,
		ScheduleID: r.ScheduleID,
		RateID:     r.RateID,
		RouteLabel: r.RouteLabel,
		Status:     r.Status,
		Amount:     r.Amount,
		CreatedAt:  r.CreatedAt,
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
