package models

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
)

// ODPModel is the persistence model for optical distribution points.
type ODPModel struct {
	ID          uint     `gorm:"primaryKey"`
	Name        string   `gorm:"size:100;not null"`
	Location    string   `gorm:"size:200;not null"`
	Latitude    *float64 `gorm:"type:decimal(10,8)"`
	Longitude   *float64 `gorm:"type:decimal(11,8)"`
	ODCID       uint     `gorm:"column:odc_id;not null;index:idx_odps_odc_id"`
	TotalPorts  int      `gorm:"not null"`
	UsedPorts   int      `gorm:"not null"`
	Type        *string  `gorm:"size:50"`
	Status      string   `gorm:"size:20;not null;index:idx_odps_status"`
	Description *string  `gorm:"type:text"`
	IsActive    bool     `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (ODPModel) TableName() string {
	return constants.TableODPs
}
