package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/infrastructure/rawio"
)

var bggrBaselines = [4]uint16{3000, 2000, 2000, 1000}

func uniform(width, height int, v uint16) []uint16 {
	data := make([]uint16, width*height)
	for i := range data {
		data[i] = v
	}
	return data
}

func mustGrid(t *testing.T, width, height int, data []uint16) *entity.SampleGrid {
	t.Helper()
	g, err := entity.NewSampleGrid(width, height, 16, data)
	require.NoError(t, err)
	return g
}

func flatBayer(width, height int) []uint16 {
	return rawio.FlatBayer(width, height, bggrBaselines)
}
