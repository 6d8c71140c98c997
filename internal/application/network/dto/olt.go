package dto

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
)

type OLTResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Brand       *string    `json:"brand"`
	Model       *string    `json:"model"`
	TotalPorts  int        `json:"total_ports"`
	UsedPorts   int        `json:"used_ports"`
	IPAddress   *string    `json:"ip_address"`
	Status      string     `json:"status"`
	Description *string    `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CreateOLTRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Location    string   `json:"location" binding:"required,min=1,max=200"`
	Latitude    *float64 `json:"latitude" binding:"omitnil,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitnil,gte=-180,lte=180"`
	Brand       *string  `json:"brand" binding:"omitnil,max=50"`
	Model       *string  `json:"model" binding:"omitnil,max=100"`
	TotalPorts  *int     `json:"total_ports" binding:"required,gte=0"`
	UsedPorts   *int     `json:"used_ports" binding:"omitnil,gte=0"`
	IPAddress   *string  `json:"ip_address" binding:"omitnil,max=50"`
	Status      *string  `json:"status" binding:"omitnil,oneof=active inactive maintenance"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"is_active"`
}

// ToDomain builds the entity with defaults applied to omitted fields.
func (r CreateOLTRequest) ToDomain() *network.OLT {
	return &network.OLT{
		Name:        r.Name,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Brand:       r.Brand,
		Model:       r.Model,
		Ports:       network.Ports{Total: valueOr(r.TotalPorts, 0), Used: valueOr(r.UsedPorts, 0)},
		IPAddress:   r.IPAddress,
		Status:      statusOrDefault(r.Status),
		Description: r.Description,
		IsActive:    valueOr(r.IsActive, true),
	}
}

type UpdateOLTRequest struct {
	Name        patch.Field[string]   `json:"name" binding:"omitnil,min=1,max=100"`
	Location    patch.Field[string]   `json:"location" binding:"omitnil,min=1,max=200"`
	Latitude    patch.Field[*float64] `json:"latitude" binding:"omitnil,gte=-90,lte=90"`
	Longitude   patch.Field[*float64] `json:"longitude" binding:"omitnil,gte=-180,lte=180"`
	Brand       patch.Field[*string]  `json:"brand" binding:"omitnil,max=50"`
	Model       patch.Field[*string]  `json:"model" binding:"omitnil,max=100"`
	TotalPorts  patch.Field[int]      `json:"total_ports" binding:"omitnil,gte=0"`
	UsedPorts   patch.Field[int]      `json:"used_ports" binding:"omitnil,gte=0"`
	IPAddress   patch.Field[*string]  `json:"ip_address" binding:"omitnil,max=50"`
	Status      patch.Field[string]   `json:"status" binding:"omitnil,oneof=active inactive maintenance"`
	Description patch.Field[*string]  `json:"description"`
	IsActive    patch.Field[bool]     `json:"is_active"`
}

// PortsChanged reports whether either capacity field is part of the update.
func (r UpdateOLTRequest) PortsChanged() bool {
	return r.TotalPorts.Set || r.UsedPorts.Set
}

// MergedPorts returns capacity after the update is applied to current.
func (r UpdateOLTRequest) MergedPorts(current network.Ports) network.Ports {
	return network.Ports{Total: r.TotalPorts.Or(current.Total), Used: r.UsedPorts.Or(current.Used)}
}

func (r UpdateOLTRequest) Changes() patch.Changes {
	c := patch.Changes{}
	patch.Put(c, "name", r.Name)
	patch.Put(c, "location", r.Location)
	patch.Put(c, "latitude", r.Latitude)
	patch.Put(c, "longitude", r.Longitude)
	patch.Put(c, "brand", r.Brand)
	patch.Put(c, "model", r.Model)
	patch.Put(c, "total_ports", r.TotalPorts)
	patch.Put(c, "used_ports", r.UsedPorts)
	patch.Put(c, "ip_address", r.IPAddress)
	patch.Put(c, "status", r.Status)
	patch.Put(c, "description", r.Description)
	patch.Put(c, "is_active", r.IsActive)
	return c
}

func ToOLTResponse(o *network.OLT) *OLTResponse {
	if o == nil {
		return nil
	}
	return &OLTResponse{
		ID:          o.ID,
		Name:        o.Name,
		Location:    o.Location,
		Latitude:    o.Latitude,
		Longitude:   o.Longitude,
		Brand:       o.Brand,
		Model:       o.Model,
		TotalPorts:  o.Ports.Total,
		UsedPorts:   o.Ports.Used,
		IPAddress:   o.IPAddress,
		Status:      o.Status.String(),
		Description: o.Description,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func ToOLTResponses(list []*network.OLT) []*OLTResponse {
	return mapper.MapSlice(list, ToOLTResponse)
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func statusOrDefault(s *string) network.Status {
	if s == nil {
		return network.StatusActive
	}
	return network.Status(*s)
}
