package response

import (
	"time"

	"rutvans_api/internal/domain/entities"
)

type SaleResponse struct {
	ID         string    `json:"id"`
	Folio      string    `json:"folio"`
	UserID     int64     `json:"userId"`
	PaymentID  int64     `json:"paymentId"`
	ScheduleID int64     `json:"scheduleId"`
	RateID     int64     `json:"rateId"`
	RouteLabel string    `json:"routeLabel"`
	Status     string    `json:"status"`
	Amount     *float64  `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DeletedResponse keeps the "mensaje" key existing ledger clients read.
type DeletedResponse struct {
	Mensaje string `json:"mensaje"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:         s.ID,
		Folio:      s.Folio,
		UserID:     s.UserID,
		PaymentID:  s.PaymentID,
		ScheduleID: s.ScheduleID,
		RateID:     s.RateID,
		RouteLabel: s.RouteLabel,
		Status:     s.Status,
		Amount:     s.Amount,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func FromSales(sales []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}
