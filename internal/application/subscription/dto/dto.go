package dto

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

// DefaultDaysAhead is the expiring-soon window used when none is given.
const DefaultDaysAhead = 7

type SubscriptionResponse struct {
	ID         uint          `json:"id"`
	CustomerID uint          `json:"customer_id"`
	PackageID  uint          `json:"package_id"`
	StartDate  biztime.Date  `json:"start_date"`
	EndDate    *biztime.Date `json:"end_date"`
	MonthlyFee float64       `json:"monthly_fee"`
	Status     string        `json:"status"`
	Notes      *string       `json:"notes"`
	IsActive   bool          `json:"is_active"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  *time.Time    `json:"updated_at"`
}

type CreateSubscriptionRequest struct {
	CustomerID *uint         `json:"customer_id" binding:"required,gt=0"`
	PackageID  *uint         `json:"package_id" binding:"required,gt=0"`
	StartDate  *biztime.Date `json:"start_date" binding:"required"`
	EndDate    *biztime.Date `json:"end_date"`
	MonthlyFee *float64      `json:"monthly_fee" binding:"required,gte=0"`
	Status     *string       `json:"status" binding:"omitnil,oneof=active inactive suspended expired"`
	Notes      *string       `json:"notes"`
	IsActive   *bool         `json:"is_active"`
}

// ToDomain builds the entity; status defaults to active.
func (r CreateSubscriptionRequest) ToDomain() *subscription.Subscription {
	s := &subscription.Subscription{
		EndDate:  r.EndDate,
		Notes:    r.Notes,
		Status:   subscription.StatusActive,
		IsActive: true,
	}
	if r.CustomerID != nil {
		s.CustomerID = *r.CustomerID
	}
	if r.PackageID != nil {
		s.PackageID = *r.PackageID
	}
	if r.StartDate != nil {
		s.StartDate = *r.StartDate
	}
	if r.MonthlyFee != nil {
		s.MonthlyFee = *r.MonthlyFee
	}
	if r.Status != nil {
		s.Status = subscription.Status(*r.Status)
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
	return s
}

type UpdateSubscriptionRequest struct {
	CustomerID patch.Field[uint]          `json:"customer_id" binding:"omitnil,gt=0"`
	PackageID  patch.Field[uint]          `json:"package_id" binding:"omitnil,gt=0"`
	StartDate  patch.Field[biztime.Date]  `json:"start_date"`
	EndDate    patch.Field[*biztime.Date] `json:"end_date"`
	MonthlyFee patch.Field[float64]       `json:"monthly_fee" binding:"omitnil,gte=0"`
	Status     patch.Field[string]        `json:"status" binding:"omitnil,oneof=active inactive suspended expired"`
	Notes      patch.Field[*string]       `json:"notes"`
	IsActive   patch.Field[bool]          `json:"is_active"`
}

func (r UpdateSubscriptionRequest) Changes() patch.Changes {
	c := patch.Changes{}
	patch.Put(c, "customer_id", r.CustomerID)
	patch.Put(c, "package_id", r.PackageID)
	patch.Put(c, "start_date", r.StartDate)
	patch.Put(c, "end_date", r.EndDate)
	patch.Put(c, "monthly_fee", r.MonthlyFee)
	patch.Put(c, "status", r.Status)
	patch.Put(c, "notes", r.Notes)
	patch.Put(c, "is_active", r.IsActive)
	return c
}

type ListSubscriptionsQuery struct {
	utils.PageQuery
	CustomerID *uint   `form:"customer_id" binding:"omitnil,gt=0"`
	Status     *string `form:"status" binding:"omitnil,oneof=active inactive suspended expired"`
}

func (q ListSubscriptionsQuery) Filter() subscription.Filter {
	f := subscription.Filter{CustomerID: q.CustomerID}
	if q.Status != nil {
		status := subscription.Status(*q.Status)
		f.Status = &status
	}
	return f
}

type ExpiringQuery struct {
	DaysAhead *int `form:"days_ahead" binding:"omitnil,gte=1"`
}

// Days returns the requested window, falling back to DefaultDaysAhead.
func (q ExpiringQuery) Days() int {
	if q.DaysAhead == nil {
		return DefaultDaysAhead
	}
	return *q.DaysAhead
}

func ToSubscriptionResponse(s *subscription.Subscription) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &SubscriptionResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		PackageID:  s.PackageID,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		MonthlyFee: s.MonthlyFee,
		Status:     s.Status.String(),
		Notes:      s.Notes,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func ToSubscriptionResponses(list []*subscription.Subscription) []*SubscriptionResponse {
	return mapper.MapSlice(list, ToSubscriptionResponse)
}
