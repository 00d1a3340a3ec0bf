package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func seq(n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(i)
	}
	return out
}

func TestNewSampleGrid_Validation(t *testing.T) {
	_, err := NewSampleGrid(0, 4, 10, nil)
	require.ErrorIs(t, err, ErrInvalidGrid)

	_, err = NewSampleGrid(4, 4, 17, seq(16))
	require.ErrorIs(t, err, ErrInvalidGrid)

	_, err = NewSampleGrid(4, 4, 10, seq(15))
	require.ErrorIs(t, err, ErrInvalidGrid)

	g, err := NewSampleGrid(4, 3, 12, seq(12))
	require.NoError(t, err)
	require.Equal(t, uint16(6), g.At(1, 2))
	require.Equal(t, []uint16{8, 9, 10, 11}, g.Row(2))
}

func TestChannelPlane_ShapeAndMapping(t *testing.T) {
	g, err := NewSampleGrid(5, 5, 8, seq(25))
	require.NoError(t, err)

	cases := []struct {
		dy, dx     int
		rows, cols int
	}{
		{0, 0, 3, 3},
		{0, 1, 3, 2},
		{1, 0, 2, 3},
		{1, 1, 2, 2},
	}
	for _, tc := range cases {
		p := NewChannelPlane(g, tc.dy, tc.dx, 2)
		require.Equal(t, tc.rows, p.Rows())
		require.Equal(t, tc.cols, p.Cols())
		for y := 0; y < p.Rows(); y++ {
			for x := 0; x < p.Cols(); x++ {
				require.Equal(t, g.At(p.GlobalY(y), p.GlobalX(x)), p.At(y, x))
				require.Equal(t, y*2+tc.dy, p.GlobalY(y))
				require.Equal(t, x*2+tc.dx, p.GlobalX(x))
			}
		}
	}

	mono := NewChannelPlane(g, 0, 0, 1)
	require.Equal(t, 5, mono.Rows())
	require.Equal(t, 5, mono.Cols())
	require.Equal(t, 3, mono.GlobalY(3))
}

func TestChannelPlane_EmptyForSingleSample(t *testing.T) {
	g, err := NewSampleGrid(1, 1, 8, []uint16{7})
	require.NoError(t, err)
	p := NewChannelPlane(g, 1, 1, 2)
	require.Zero(t, p.Rows())
	require.Zero(t, p.Cols())
}

func TestParsePattern(t *testing.T) {
	for in, want := range map[string]BayerPattern{
		"RGGB":      PatternRGGB,
		"bggr":      PatternBGGR,
		" GRBG ":    PatternGRBG,
		"GBRG":      PatternGBRG,
		"Mono":      PatternMono,
		"Mono/None": PatternMono,
	} {
		got, err := ParsePattern(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := ParsePattern("RGBW")
	require.True(t, errors.Is(err, ErrInvalidPattern))
	require.False(t, BayerPattern(42).Valid())
	require.True(t, PatternRGGB.IsBayer())
	require.False(t, PatternMono.IsBayer())
}
