package mappers

import (
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
)

func PackageToModel(p *packages.Package) *models.PackageModel {
	return &models.PackageModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Speed:       p.Speed,
		Price:       p.Price,
		Features:    p.Features,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func PackageToDomain(m *models.PackageModel) *packages.Package {
	return &packages.Package{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Speed:       m.Speed,
		Price:       m.Price,
		Features:    m.Features,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
