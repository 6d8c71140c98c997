package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
)

// DateToModel converts a calendar date to its column value.
func DateToModel(d biztime.Date) datatypes.Date {
	return datatypes.Date(d.Time())
}

// DateToDomain converts a scanned column value to a calendar date.
func DateToDomain(d datatypes.Date) biztime.Date {
	return biztime.DateOf(time.Time(d))
}

func datePtrToModel(d *biztime.Date) *datatypes.Date {
	if d == nil {
		return nil
	}
	v := DateToModel(*d)
	return &v
}

func datePtrToDomain(d *datatypes.Date) *biztime.Date {
	if d == nil {
		return nil
	}
	v := DateToDomain(*d)
	return &v
}
