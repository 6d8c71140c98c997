package dto

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

// PackageResponse includes FeaturesHTML, the sanitized rendering of the
// markdown feature list.
type PackageResponse struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	Speed        *string    `json:"speed"`
	Price        float64    `json:"price"`
	Features     *string    `json:"features"`
	FeaturesHTML string     `json:"features_html"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type CreatePackageRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description *string  `json:"description"`
	Speed       *string  `json:"speed" binding:"omitnil,max=50"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Features    *string  `json:"features"`
	IsActive    *bool    `json:"is_active"`
}

func (r CreatePackageRequest) ToDomain() *packages.Package {
	p := &packages.Package{
		Name:        r.Name,
		Description: r.Description,
		Speed:       r.Speed,
		Features:    r.Features,
		IsActive:    true,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p
}

type UpdatePackageRequest struct {
	Name        patch.Field[string]  `json:"name" binding:"omitnil,min=1,max=100"`
	Description patch.Field[*string] `json:"description"`
	Speed       patch.Field[*string] `json:"speed" binding:"omitnil,max=50"`
	Price       patch.Field[float64] `json:"price" binding:"omitnil,gte=0"`
	Features    patch.Field[*string] `json:"features"`
	IsActive    patch.Field[bool]    `json:"is_active"`
}

func (r UpdatePackageRequest) Changes() patch.Changes {
	c := patch.Changes{}
	patch.Put(c, "name", r.Name)
	patch.Put(c, "description", r.Description)
	patch.Put(c, "speed", r.Speed)
	patch.Put(c, "price", r.Price)
	patch.Put(c, "features", r.Features)
	patch.Put(c, "is_active", r.IsActive)
	return c
}

type ListPackagesQuery struct {
	utils.PageQuery
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
}

func (q ListPackagesQuery) Filter() packages.Filter {
	return packages.Filter{Search: q.Search, IsActive: q.IsActive}
}

// ToPackageResponse converts a package; featuresHTML is rendered by the caller.
func ToPackageResponse(p *packages.Package, featuresHTML string) *PackageResponse {
	if p == nil {
		return nil
	}
	return &PackageResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Speed:        p.Speed,
		Price:        p.Price,
		Features:     p.Features,
		FeaturesHTML: featuresHTML,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
