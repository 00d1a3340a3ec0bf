package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/infrastructure/vision"
)

func TestFormatSession(t *testing.T) {
	s := entity.Session{
		Width: 1920, Height: 1080, BitDepth: 12, Pattern: "RGGB", Algorithm: "bad-line",
		Params: map[string]any{"threshold": 200, "axis": "Rows"},
	}
	out := formatSession(s)
	require.Contains(t, out, "width=1920 height=1080 depth=12")
	require.Contains(t, out, "pattern=RGGB")
	require.Contains(t, out, "algorithm=bad-line")
	require.Contains(t, out, "axis=Rows\nthreshold=200")
}

func TestFormatParam(t *testing.T) {
	d, err := vision.NewRegistry(vision.DefaultOverlayLimit).Get("bad-line")
	require.NoError(t, err)

	schema := d.Parameters()
	require.Equal(t, "threshold (int): Threshold, default 100, range [1, 10000]", formatParam(schema[0]))
	require.Equal(t, "axis (choice): Detect Axis, default Both, options Rows/Cols/Both", formatParam(schema[1]))
}
