package dto

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

type PaymentResponse struct {
	ID              uint         `json:"id"`
	CustomerID      uint         `json:"customer_id"`
	SubscriptionID  uint         `json:"subscription_id"`
	Amount          float64      `json:"amount"`
	PaymentDate     biztime.Date `json:"payment_date"`
	DueDate         biztime.Date `json:"due_date"`
	Status          string       `json:"status"`
	PaymentMethod   *string      `json:"payment_method"`
	ReferenceNumber *string      `json:"reference_number"`
	Notes           *string      `json:"notes"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       *time.Time   `json:"updated_at"`
}

type CreatePaymentRequest struct {
	CustomerID      *uint         `json:"customer_id" binding:"required,gt=0"`
	SubscriptionID  *uint         `json:"subscription_id" binding:"required,gt=0"`
	Amount          *float64      `json:"amount" binding:"required,gte=0"`
	PaymentDate     *biztime.Date `json:"payment_date" binding:"required"`
	DueDate         *biztime.Date `json:"due_date" binding:"required"`
	Status          *string       `json:"status" binding:"omitnil,oneof=pending paid overdue cancelled"`
	PaymentMethod   *string       `json:"payment_method" binding:"omitnil,max=50"`
	ReferenceNumber *string       `json:"reference_number" binding:"omitnil,max=100"`
	Notes           *string       `json:"notes"`
}

// ToDomain builds the entity; status defaults to pending.
func (r CreatePaymentRequest) ToDomain() *payment.Payment {
	p := &payment.Payment{
		Status:          payment.StatusPending,
		PaymentMethod:   r.PaymentMethod,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
	}
	if r.CustomerID != nil {
		p.CustomerID = *r.CustomerID
	}
	if r.SubscriptionID != nil {
		p.SubscriptionID = *r.SubscriptionID
	}
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	if r.PaymentDate != nil {
		p.PaymentDate = *r.PaymentDate
	}
	if r.DueDate != nil {
		p.DueDate = *r.DueDate
	}
	if r.Status != nil {
		p.Status = payment.Status(*r.Status)
	}
	return p
}

type UpdatePaymentRequest struct {
	CustomerID      patch.Field[uint]         `json:"customer_id" binding:"omitnil,gt=0"`
	SubscriptionID  patch.Field[uint]         `json:"subscription_id" binding:"omitnil,gt=0"`
	Amount          patch.Field[float64]      `json:"amount" binding:"omitnil,gte=0"`
	PaymentDate     patch.Field[biztime.Date] `json:"payment_date"`
	DueDate         patch.Field[biztime.Date] `json:"due_date"`
	Status          patch.Field[string]       `json:"status" binding:"omitnil,oneof=pending paid overdue cancelled"`
	PaymentMethod   patch.Field[*string]      `json:"payment_method" binding:"omitnil,max=50"`
	ReferenceNumber patch.Field[*string]      `json:"reference_number" binding:"omitnil,max=100"`
	Notes           patch.Field[*string]      `json:"notes"`
}

// OwnershipChanged reports whether the update touches the customer or
// subscription link.
func (r UpdatePaymentRequest) OwnershipChanged() bool {
	return r.CustomerID.Set || r.SubscriptionID.Set
}

func (r UpdatePaymentRequest) Changes() patch.Changes {
	c := patch.Changes{}
	patch.Put(c, "customer_id", r.CustomerID)
	patch.Put(c, "subscription_id", r.SubscriptionID)
	patch.Put(c, "amount", r.Amount)
	patch.Put(c, "payment_date", r.PaymentDate)
	patch.Put(c, "due_date", r.DueDate)
	patch.Put(c, "status", r.Status)
	patch.Put(c, "payment_method", r.PaymentMethod)
	patch.Put(c, "reference_number", r.ReferenceNumber)
	patch.Put(c, "notes", r.Notes)
	return c
}

type ListPaymentsQuery struct {
	utils.PageQuery
	CustomerID     *uint   `form:"customer_id" binding:"omitnil,gt=0"`
	SubscriptionID *uint   `form:"subscription_id" binding:"omitnil,gt=0"`
	Status         *string `form:"status" binding:"omitnil,oneof=pending paid overdue cancelled"`
}

func (q ListPaymentsQuery) Filter() payment.Filter {
	f := payment.Filter{CustomerID: q.CustomerID, SubscriptionID: q.SubscriptionID}
	if q.Status != nil {
		status := payment.Status(*q.Status)
		f.Status = &status
	}
	return f
}

// SummaryQuery bounds payment_date inclusively; either end may be omitted.
type SummaryQuery struct {
	StartDate *biztime.Date `form:"start_date"`
	EndDate   *biztime.Date `form:"end_date"`
}

func (q SummaryQuery) Range() payment.DateRange {
	return payment.DateRange{From: q.StartDate, To: q.EndDate}
}

type StatusTotalResponse struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type SummaryResponse struct {
	TotalPayments   int64                  `json:"total_payments"`
	TotalAmount     float64                `json:"total_amount"`
	StatusBreakdown []*StatusTotalResponse `json:"status_breakdown"`
}

// PayRequest settles a payment. A missing payment_date means today.
type PayRequest struct {
	PaymentMethod   *string       `json:"payment_method" binding:"omitnil,max=50"`
	ReferenceNumber *string       `json:"reference_number" binding:"omitnil,max=100"`
	PaymentDate     *biztime.Date `json:"payment_date"`
}

type GenerateRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=9999"`
}

type GenerateResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type MarkOverdueResponse struct {
	Updated int64 `json:"updated"`
}

func ToPaymentResponse(p *payment.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		SubscriptionID:  p.SubscriptionID,
		Amount:          p.Amount,
		PaymentDate:     p.PaymentDate,
		DueDate:         p.DueDate,
		Status:          p.Status.String(),
		PaymentMethod:   p.PaymentMethod,
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToPaymentResponses(list []*payment.Payment) []*PaymentResponse {
	return mapper.MapSlice(list, ToPaymentResponse)
}

func ToSummaryResponse(s *payment.Summary) *SummaryResponse {
	out := &SummaryResponse{
		TotalPayments:   s.TotalPayments,
		TotalAmount:     s.TotalAmount,
		StatusBreakdown: make([]*StatusTotalResponse, 0, len(s.StatusBreakdown)),
	}
	for _, row := range s.StatusBreakdown {
		out.StatusBreakdown = append(out.StatusBreakdown, &StatusTotalResponse{
			Status:      row.Status.String(),
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}
	return out
}
