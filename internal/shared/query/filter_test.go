package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_OffsetAndSize(t *testing.T) {
	tests := []struct {
		name       string
		page       Page
		wantOffset int
		wantSize   int
	}{
		{"defaults", DefaultPage(), 0, 100},
		{"explicit window", Page{Skip: 20, Limit: 10}, 20, 10},
		{"negative skip clamps", Page{Skip: -5, Limit: 10}, 0, 10},
		{"zero limit falls back", Page{Skip: 0, Limit: 0}, 0, DefaultLimit},
		{"oversized limit clamps", Page{Skip: 0, Limit: 5000}, 0, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.page.Offset())
			assert.Equal(t, tt.wantSize, tt.page.Size())
		})
	}
}
