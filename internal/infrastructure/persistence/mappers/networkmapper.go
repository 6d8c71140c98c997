package mappers

import (
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
)

func OLTToModel(o *network.OLT) *models.OLTModel {
	return &models.OLTModel{
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

func OLTToDomain(m *models.OLTModel) *network.OLT {
	return &network.OLT{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Brand:       m.Brand,
		Model:       m.Model,
		Ports:       network.Ports{Total: m.TotalPorts, Used: m.UsedPorts},
		IPAddress:   m.IPAddress,
		Status:      network.Status(m.Status),
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ODCToModel(o *network.ODC) *models.ODCModel {
	return &models.ODCModel{
		ID:          o.ID,
		Name:        o.Name,
		Location:    o.Location,
		Latitude:    o.Latitude,
		Longitude:   o.Longitude,
		OLTID:       o.OLTID,
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

func ODCToDomain(m *models.ODCModel) *network.ODC {
	return &network.ODC{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		OLTID:       m.OLTID,
		Ports:       network.Ports{Total: m.TotalPorts, Used: m.UsedPorts},
		Type:        m.Type,
		Status:      network.Status(m.Status),
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ODPToModel(o *network.ODP) *models.ODPModel {
	return &models.ODPModel{
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

func ODPToDomain(m *models.ODPModel) *network.ODP {
	return &network.ODP{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		ODCID:       m.ODCID,
		Ports:       network.Ports{Total: m.TotalPorts, Used: m.UsedPorts},
		Type:        m.Type,
		Status:      network.Status(m.Status),
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
