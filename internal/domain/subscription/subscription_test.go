package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
)

func TestSubscription_ExpiresWithin(t *testing.T) {
	today := biztime.NewDate(2024, time.May, 10)
	at := func(offset int) *biztime.Date {
		d := today.AddDays(offset)
		return &d
	}

	tests := []struct {
		name   string
		sub    Subscription
		expect bool
	}{
		{"ends today", Subscription{Status: StatusActive, EndDate: at(0)}, true},
		{"ends on last day of window", Subscription{Status: StatusActive, EndDate: at(7)}, true},
		{"ended yesterday", Subscription{Status: StatusActive, EndDate: at(-1)}, false},
		{"ends after window", Subscription{Status: StatusActive, EndDate: at(8)}, false},
		{"open ended", Subscription{Status: StatusActive}, false},
		{"suspended", Subscription{Status: StatusSuspended, EndDate: at(3)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.sub.ExpiresWithin(today, 7))
		})
	}
}

func TestSubscription_Billable(t *testing.T) {
	assert.True(t, (&Subscription{Status: StatusActive, IsActive: true}).Billable())
	assert.False(t, (&Subscription{Status: StatusActive, IsActive: false}).Billable())
	assert.False(t, (&Subscription{Status: StatusExpired, IsActive: true}).Billable())
}
