package dto

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

type CustomerResponse struct {
	ID               uint         `json:"id"`
	CustomerID       string       `json:"customer_id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address"`
	Latitude         *float64     `json:"latitude"`
	Longitude        *float64     `json:"longitude"`
	ODPID            *uint        `json:"odp_id"`
	ODCPort          *int         `json:"odc_port"`
	PackageID        *uint        `json:"package_id"`
	MonthlyFee       float64      `json:"monthly_fee"`
	Status           string       `json:"status"`
	RegistrationDate biztime.Date `json:"registration_date"`
	Notes            *string      `json:"notes"`
	IsActive         bool         `json:"is_active"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        *time.Time   `json:"updated_at"`
}

type CreateCustomerRequest struct {
	CustomerID       string        `json:"customer_id" binding:"required,min=1,max=50"`
	Name             string        `json:"name" binding:"required,min=1,max=100"`
	Email            string        `json:"email" binding:"required,email"`
	Phone            *string       `json:"phone" binding:"required,max=20"`
	Address          string        `json:"address" binding:"required,min=1"`
	Latitude         *float64      `json:"latitude" binding:"omitnil,gte=-90,lte=90"`
	Longitude        *float64      `json:"longitude" binding:"omitnil,gte=-180,lte=180"`
	ODPID            *uint         `json:"odp_id" binding:"omitnil,gt=0"`
	ODCPort          *int          `json:"odc_port" binding:"omitnil,gte=0"`
	PackageID        *uint         `json:"package_id" binding:"omitnil,gt=0"`
	MonthlyFee       *float64      `json:"monthly_fee" binding:"required,gte=0"`
	Status           *string       `json:"status" binding:"omitnil,oneof=active inactive suspended pending"`
	RegistrationDate *biztime.Date `json:"registration_date" binding:"required"`
	Notes            *string       `json:"notes"`
	IsActive         *bool         `json:"is_active"`
}

// ToDomain builds the entity with defaults applied to omitted fields.
func (r CreateCustomerRequest) ToDomain() *customer.Customer {
	c := &customer.Customer{
		CustomerID: r.CustomerID,
		Name:       r.Name,
		Email:      r.Email,
		Address:    r.Address,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		ODPID:      r.ODPID,
		ODCPort:    r.ODCPort,
		PackageID:  r.PackageID,
		Status:     customer.StatusPending,
		Notes:      r.Notes,
		IsActive:   true,
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.MonthlyFee != nil {
		c.MonthlyFee = *r.MonthlyFee
	}
	if r.Status != nil {
		c.Status = customer.Status(*r.Status)
	}
	if r.RegistrationDate != nil {
		c.RegistrationDate = *r.RegistrationDate
	}
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	}
	return c
}

type UpdateCustomerRequest struct {
	CustomerID       patch.Field[string]       `json:"customer_id" binding:"omitnil,min=1,max=50"`
	Name             patch.Field[string]       `json:"name" binding:"omitnil,min=1,max=100"`
	Email            patch.Field[string]       `json:"email" binding:"omitnil,email"`
	Phone            patch.Field[string]       `json:"phone" binding:"omitnil,max=20"`
	Address          patch.Field[string]       `json:"address" binding:"omitnil,min=1"`
	Latitude         patch.Field[*float64]     `json:"latitude" binding:"omitnil,gte=-90,lte=90"`
	Longitude        patch.Field[*float64]     `json:"longitude" binding:"omitnil,gte=-180,lte=180"`
	ODPID            patch.Field[*uint]        `json:"odp_id" binding:"omitnil,gt=0"`
	ODCPort          patch.Field[*int]         `json:"odc_port" binding:"omitnil,gte=0"`
	PackageID        patch.Field[*uint]        `json:"package_id" binding:"omitnil,gt=0"`
	MonthlyFee       patch.Field[float64]      `json:"monthly_fee" binding:"omitnil,gte=0"`
	Status           patch.Field[string]       `json:"status" binding:"omitnil,oneof=active inactive suspended pending"`
	RegistrationDate patch.Field[biztime.Date] `json:"registration_date"`
	Notes            patch.Field[*string]      `json:"notes"`
	IsActive         patch.Field[bool]         `json:"is_active"`
}

func (r UpdateCustomerRequest) Changes() patch.Changes {
	c := patch.Changes{}
	patch.Put(c, "customer_id", r.CustomerID)
	patch.Put(c, "name", r.Name)
	patch.Put(c, "email", r.Email)
	patch.Put(c, "phone", r.Phone)
	patch.Put(c, "address", r.Address)
	patch.Put(c, "latitude", r.Latitude)
	patch.Put(c, "longitude", r.Longitude)
	patch.Put(c, "odp_id", r.ODPID)
	patch.Put(c, "odc_port", r.ODCPort)
	patch.Put(c, "package_id", r.PackageID)
	patch.Put(c, "monthly_fee", r.MonthlyFee)
	patch.Put(c, "status", r.Status)
	patch.Put(c, "registration_date", r.RegistrationDate)
	patch.Put(c, "notes", r.Notes)
	patch.Put(c, "is_active", r.IsActive)
	return c
}

type ListCustomersQuery struct {
	utils.PageQuery
	Search    string  `form:"search"`
	Status    *string `form:"status" binding:"omitnil,oneof=active inactive suspended pending"`
	ODPID     *uint   `form:"odp_id" binding:"omitnil,gt=0"`
	PackageID *uint   `form:"package_id" binding:"omitnil,gt=0"`
}

func (q ListCustomersQuery) Filter() customer.Filter {
	f := customer.Filter{Search: q.Search, ODPID: q.ODPID, PackageID: q.PackageID}
	if q.Status != nil {
		status := customer.Status(*q.Status)
		f.Status = &status
	}
	return f
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// ImportFailure describes one spreadsheet row that was not imported.
type ImportFailure struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportResponse struct {
	Imported int             `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}

func ToCustomerResponse(c *customer.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:               c.ID,
		CustomerID:       c.CustomerID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		Latitude:         c.Latitude,
		Longitude:        c.Longitude,
		ODPID:            c.ODPID,
		ODCPort:          c.ODCPort,
		PackageID:        c.PackageID,
		MonthlyFee:       c.MonthlyFee,
		Status:           c.Status.String(),
		RegistrationDate: c.RegistrationDate,
		Notes:            c.Notes,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func ToCustomerResponses(list []*customer.Customer) []*CustomerResponse {
	return mapper.MapSlice(list, ToCustomerResponse)
}
