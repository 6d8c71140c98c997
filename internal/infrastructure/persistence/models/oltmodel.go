package models

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/shared/constants"
)

// OLTModel is the persistence model for optical line terminals.
// Boolean and status columns carry no gorm default so explicit false and
// empty values reach the database as written by the service layer.
type OLTModel struct {
	ID          uint     `gorm:"primaryKey"`
	Name        string   `gorm:"size:100;not null"`
	Location    string   `gorm:"size:200;not null"`
	Latitude    *float64 `gorm:"type:decimal(10,8)"`
	Longitude   *float64 `gorm:"type:decimal(11,8)"`
	Brand       *string  `gorm:"size:50"`
	Model       *string  `gorm:"size:100"`
	TotalPorts  int      `gorm:"not null"`
	UsedPorts   int      `gorm:"not null"`
	IPAddress   *string  `gorm:"column:ip_address;size:50"`
	Status      string   `gorm:"size:20;not null;index:idx_olts_status"`
	Description *string  `gorm:"type:text"`
	IsActive    bool     `gorm:"not null;index:idx_olts_is_active"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (OLTModel) TableName() string {
	return constants.TableOLTs
}
