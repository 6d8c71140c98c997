package dto

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
)

type ODPResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	ODCID       uint       `json:"odc_id"`
	TotalPorts  int        `json:"total_ports"`
	UsedPorts   int        `json:"used_ports"`
	Type        *string    `json:"type"`
	Status      string     `json:"status"`
	Description *string    `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CreateODPRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Location    string   `json:"location" binding:"required,min=1,max=200"`
	Latitude    *float64 `json:"latitude" binding:"omitnil,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitnil,gte=-180,lte=180"`
	ODCID       uint     `json:"odc_id" binding:"required"`
	TotalPorts  *int     `json:"total_ports" binding:"required,gte=0"`
	UsedPorts   *int     `json:"used_ports" binding:"omitnil,gte=0"`
	Type        *string  `json:"type" binding:"omitnil,max=50"`
	Status      *string  `json:"status" binding:"omitnil,oneof=active inactive maintenance"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"is_active"`
}

func (r CreateODPRequest) ToDomain() *network.ODP {
	return &network.ODP{
		Name:        r.Name,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		ODCID:       r.ODCID,
		Ports:       network.Ports{Total: valueOr(r.TotalPorts, 0), Used: valueOr(r.UsedPorts, 0)},
		Type:        r.Type,
		Status:      statusOrDefault(r.Status),
		Description: r.Description,
		IsActive:    valueOr(r.IsActive, true),
	}
}

type UpdateODPRequest struct {
	Name        patch.Field[string]   `json:"name" binding:"omitnil,min=1,max=100"`
	Location    patch.Field[string]   `json:"location" binding:"omitnil,min=1,max=200"`
	Latitude    patch.Field[*float64] `json:"latitude" binding:"omitnil,gte=-90,lte=90"`
	Longitude   patch.Field[*float64] `json:"longitude" binding:"omitnil,gte=-180,lte=180"`
	ODCID       patch.Field[uint]     `json:"odc_id" binding:"omitnil,gt=0"`
	TotalPorts  patch.Field[int]      `json:"total_ports" binding:"omitnil,gte=0"`
	UsedPorts   patch.Field[int]      `json:"used_ports" binding:"omitnil,gte=0"`
	Type        patch.Field[*string]  `json:"type" binding:"omitnil,max=50"`
	Status      patch.Field[string]   `json:"status" binding:"omitnil,oneof=active inactive maintenance"`
	Description patch.Field[*string]  `json:"description"`
	IsActive    patch.Field[bool]     `json:"is_active"`
}

func (r UpdateODPRequest) PortsChanged() bool {
	return r.TotalPorts.Set || r.UsedPorts.Set
}

func (r UpdateODPRequest) MergedPorts(current network.Ports) network.Ports {
	return network.Ports{Total: r.TotalPorts.Or(current.Total), Used: r.UsedPorts.Or(current.Used)}
}

func (r UpdateODPRequest) Changes() patch.Changes {
	c := patch.Changes{}
	patch.Put(c, "name", r.Name)
	patch.Put(c, "location", r.Location)
	patch.Put(c, "latitude", r.Latitude)
	patch.Put(c, "longitude", r.Longitude)
	patch.Put(c, "odc_id", r.ODCID)
	patch.Put(c, "total_ports", r.TotalPorts)
	patch.Put(c, "used_ports", r.UsedPorts)
	patch.Put(c, "type", r.Type)
	patch.Put(c, "status", r.Status)
	patch.Put(c, "description", r.Description)
	patch.Put(c, "is_active", r.IsActive)
	return c
}

func ToODPResponse(o *network.ODP) *ODPResponse {
	if o == nil {
		return nil
	}
	return &ODPResponse{
		ID:          o.ID,
		Name:        o.Name,
		Location:    o.Location,
		Latitude:    o.Latitude,
		Longitude:   o.Longitude,
		ODCID:       o.ODCID,
		TotalPorts:  o.Ports.Total,
		UsedPorts:   o.Ports.Used,
		Type:        o.Type,
		Status:      o.Status.String(),
		Description: o.Description,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func ToODPResponses(list []*network.ODP) []*ODPResponse {
	return mapper.MapSlice(list, ToODPResponse)
}
