package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateServerLoad(t *testing.T) {
	tests := []struct {
		name     string
		cpu      float64
		memory   float64
		load     float64
		capacity float64
		healthy  bool
	}{
		{"유휴", 0, 0, 0, 1, true},
		{"보통", 0.5, 0.5, 0.5, 0.5, true},
		{"CPU 과부하", 0.95, 0.2, 0.725, 0.275, false},
		{"메모리 과부하", 0.1, 0.96, 0.358, 0.642, false},
		{"용량은 0 미만으로 내려가지 않음", 1.5, 1.5, 1.5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateServerLoad(tt.cpu, tt.memory)
			assert.InDelta(t, tt.load, got.Load, 1e-9)
			assert.InDelta(t, tt.capacity, got.Capacity, 1e-9)
			assert.Equal(t, tt.healthy, got.IsHealthy)
		})
	}
}

func TestGetServerLoad(t *testing.T) {
	load := GetServerLoad()

	assert.GreaterOrEqual(t, load.CpuUsage, 0.0)
	assert.GreaterOrEqual(t, load.MemoryUsage, 0.0)
	assert.GreaterOrEqual(t, load.Capacity, 0.0)
}
