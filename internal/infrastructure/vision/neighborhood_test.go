package vision

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"sensor-inspector/internal/domain/entity"
)

func TestDetectPixels_UniformPlane(t *testing.T) {
	g := mustGrid(t, 16, 12, uniform(16, 12, 777))
	report, err := DetectPixels(entity.NewChannelPlane(g, 0, 0, 1), 1)
	require.NoError(t, err)
	require.True(t, report.Empty())
}

func TestDetectPixels_BorderNeverFlagged(t *testing.T) {
	const w, h = 24, 18
	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]uint16, w*h)
	for i := range data {
		data[i] = uint16(rng.IntN(4096))
	}
	// экстремальные значения на краях
	for x := 0; x < w; x++ {
		data[x] = 65535
		data[(h-1)*w+x] = 65535
	}
	for y := 0; y < h; y++ {
		data[y*w] = 0
		data[y*w+w-1] = 65535
	}
	g := mustGrid(t, w, h, data)

	report, err := DetectPixels(entity.NewChannelPlane(g, 0, 0, 1), 10)
	require.NoError(t, err)
	require.NotEmpty(t, report.Points)
	for _, p := range report.Points {
		require.True(t, p.X >= 1 && p.X <= w-2, "x=%d", p.X)
		require.True(t, p.Y >= 1 && p.Y <= h-2, "y=%d", p.Y)
	}
}

func TestDetectPixels_SingleHotPixel(t *testing.T) {
	data := uniform(9, 9, 100)
	data[4*9+6] = 400
	g := mustGrid(t, 9, 9, data)

	report, err := DetectPixels(entity.NewChannelPlane(g, 0, 0, 1), 299)
	require.NoError(t, err)
	require.Equal(t, []image.Point{{X: 6, Y: 4}}, report.Points)

	report, err = DetectPixels(entity.NewChannelPlane(g, 0, 0, 1), 300)
	require.NoError(t, err)
	require.Empty(t, report.Points)
}

func TestDetectPixels_DeadPixelNoUnderflow(t *testing.T) {
	data := uniform(5, 5, 800)
	data[2*5+2] = 0
	g := mustGrid(t, 5, 5, data)

	report, err := DetectPixels(entity.NewChannelPlane(g, 0, 0, 1), 500)
	require.NoError(t, err)
	require.Equal(t, []image.Point{{X: 2, Y: 2}}, report.Points)
}

func TestDetectPixels_TooSmall(t *testing.T) {
	g := mustGrid(t, 2, 8, uniform(2, 8, 1))
	report, err := DetectPixels(entity.NewChannelPlane(g, 0, 0, 1), 10)
	require.ErrorIs(t, err, entity.ErrGridTooSmall)
	require.True(t, report.Empty())
}

func TestDetectPixels_RowMajorOrder(t *testing.T) {
	data := uniform(8, 8, 100)
	data[5*8+2] = 4000
	data[2*8+6] = 4000
	data[2*8+3] = 4000
	g := mustGrid(t, 8, 8, data)

	report, err := DetectPixels(entity.NewChannelPlane(g, 0, 0, 1), 1000)
	require.NoError(t, err)
	require.Equal(t, []image.Point{{X: 3, Y: 2}, {X: 6, Y: 2}, {X: 2, Y: 5}}, report.Points)
}
