package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sensor-inspector/internal/domain/entity"
)

func TestDetectLines_Uniform(t *testing.T) {
	g := mustGrid(t, 10, 10, uniform(10, 10, 500))
	report, err := DetectLines(entity.NewChannelPlane(g, 0, 0, 1), 1, entity.AxisBoth)
	require.NoError(t, err)
	require.True(t, report.Empty())
}

func TestDetectLines_AxesIndependent(t *testing.T) {
	data := uniform(10, 10, 1000)
	for x := 0; x < 10; x++ {
		data[3*10+x] = 3000
	}
	g := mustGrid(t, 10, 10, data)
	plane := entity.NewChannelPlane(g, 0, 0, 1)

	report, err := DetectLines(plane, 500, entity.AxisRows)
	require.NoError(t, err)
	require.Equal(t, []int{3}, report.Rows)
	require.Empty(t, report.Cols)

	// каждый столбец одинаково задет строкой 3, поэтому столбцы чистые
	report, err = DetectLines(plane, 500, entity.AxisCols)
	require.NoError(t, err)
	require.Empty(t, report.Rows)
	require.Empty(t, report.Cols)

	report, err = DetectLines(plane, 500, entity.AxisBoth)
	require.NoError(t, err)
	require.Equal(t, []int{3}, report.Rows)
	require.Empty(t, report.Cols)
}

func TestDetectLines_DarkColumn(t *testing.T) {
	data := uniform(12, 6, 2000)
	for y := 0; y < 6; y++ {
		data[y*12+11] = 0
	}
	g := mustGrid(t, 12, 6, data)

	report, err := DetectLines(entity.NewChannelPlane(g, 0, 0, 1), 1000, entity.AxisBoth)
	require.NoError(t, err)
	require.Equal(t, []int{11}, report.Cols)
	require.Empty(t, report.Rows)
}

func TestDetectLines_InvalidAxis(t *testing.T) {
	g := mustGrid(t, 4, 4, uniform(4, 4, 1))
	_, err := DetectLines(entity.NewChannelPlane(g, 0, 0, 1), 1, entity.LineAxis("Diagonal"))
	require.ErrorIs(t, err, entity.ErrParameterOutOfRange)
}

func TestDetectLines_EmptyPlane(t *testing.T) {
	g := mustGrid(t, 1, 1, []uint16{5})
	report, err := DetectLines(entity.NewChannelPlane(g, 1, 1, 2), 1, entity.AxisBoth)
	require.ErrorIs(t, err, entity.ErrGridTooSmall)
	require.True(t, report.Empty())
}
