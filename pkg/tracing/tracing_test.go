package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{"负数不采样", -0.5, "AlwaysOffSampler"},
		{"零不采样", 0, "AlwaysOffSampler"},
		{"按比例", 0.25, "TraceIDRatioBased{0.25}"},
		{"一为全量", 1, "AlwaysOnSampler"},
		{"大于一为全量", 3, "AlwaysOnSampler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, samplerFor(tt.ratio).Description())
		})
	}
}
