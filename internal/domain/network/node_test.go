package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports Ports
		want  error
	}{
		{"empty", Ports{}, nil},
		{"partially used", Ports{Total: 16, Used: 9}, nil},
		{"full", Ports{Total: 8, Used: 8}, nil},
		{"over capacity", Ports{Total: 8, Used: 9}, ErrPortsExceeded},
		{"negative total", Ports{Total: -1}, ErrNegativePorts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ports.Validate())
		})
	}
}

func TestPorts_Free(t *testing.T) {
	assert.Equal(t, 7, Ports{Total: 16, Used: 9}.Free())
	assert.Equal(t, 0, Ports{Total: 4, Used: 6}.Free())
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("retired").IsValid())
	assert.False(t, Status("").IsValid())
}
