package models

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
)

// PackageModel is the persistence model for service packages.
type PackageModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null"`
	Description *string `gorm:"type:text"`
	Speed       *string `gorm:"size:50"`
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Features    *string `gorm:"type:text"`
	IsActive    bool    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (PackageModel) TableName() string {
	return constants.TablePackages
}
