package repository

import (
	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/mappers"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
)

// updateColumns applies changes to the row with the given id and stamps
// updated_at. Calendar dates in changes are converted to column values.
// It returns the number of rows affected.
func updateColumns(tx *gorm.DB, model interface{}, id uint, changes map[string]interface{}) (int64, error) {
	columns := make(map[string]interface{}, len(changes)+1)
	for column, value := range changes {
		columns[column] = columnValue(value)
	}
	columns["updated_at"] = biztime.NowUTC()

	result := tx.Model(model).Where("id = ?", id).Updates(columns)
	return result.RowsAffected, result.Error
}

func columnValue(value interface{}) interface{} {
	switch v := value.(type) {
	case biztime.Date:
		return mappers.DateToModel(v)
	case *biztime.Date:
		if v == nil {
			return nil
		}
		return mappers.DateToModel(*v)
	default:
		return value
	}
}

// statusCount is the scan target of GROUP BY status queries.
type statusCount struct {
	Status string
	Count  int64
}

// idCount is the scan target of GROUP BY <foreign key> queries.
type idCount struct {
	ID    uint
	Count int64
}

func countActive(tx *gorm.DB, model interface{}) (active int64, inactive int64, err error) {
	if err = tx.Model(model).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	if err = tx.Model(model).Where("is_active = ?", false).Count(&inactive).Error; err != nil {
		return 0, 0, err
	}
	return active, inactive, nil
}
