package app

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/infrastructure/rawio"
	"sensor-inspector/internal/infrastructure/storage"
	"sensor-inspector/internal/infrastructure/vision"
)

type fakeRenderer struct {
	calls    int
	overlays int
}

func (f *fakeRenderer) Render(grid *entity.SampleGrid, overlays []entity.Overlay) ([]byte, error) {
	f.calls++
	f.overlays = len(overlays)
	return []byte("img"), nil
}

func (f *fakeRenderer) Extension() string { return ".png" }

func newTestService(defaults entity.Session) (*InspectionService, *fakeRenderer) {
	repo := storage.NewMemoryUserRepository(defaults)
	renderer := &fakeRenderer{}
	return NewInspectionService(NewUserService(repo), vision.NewRegistry(vision.DefaultOverlayLimit), renderer, nil), renderer
}

func encode(t *testing.T, data []uint16) []byte {
	t.Helper()
	buf := make([]byte, 2*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}
	return buf
}

func hotPixelRaw(t *testing.T) []byte {
	data := rawio.FlatBayer(40, 40, [4]uint16{3000, 2000, 2000, 1000})
	data[5*40+5] = 5000
	return encode(t, data)
}

func TestInspectionService_Inspect(t *testing.T) {
	svc, renderer := newTestService(entity.Session{})

	out, err := svc.Inspect(context.Background(), InspectionRequest{
		Raw:       bytes.NewReader(hotPixelRaw(t)),
		Width:     40,
		Height:    40,
		BitDepth:  16,
		Pattern:   "BGGR",
		Algorithm: "Bad Pixel Detection",
		Params:    map[string]any{"threshold": "500"},
		Render:    true,
	})
	require.NoError(t, err)
	require.Equal(t, []entity.Overlay{entity.NewPointOverlay(5, 5)}, out.Result.Overlays)
	require.Equal(t, []byte("img"), out.Highlighted)
	require.Equal(t, 1, renderer.calls)
	require.Equal(t, 1, renderer.overlays)
}

func TestInspectionService_InspectErrors(t *testing.T) {
	svc, renderer := newTestService(entity.Session{})
	ctx := context.Background()
	base := InspectionRequest{Width: 40, Height: 40, BitDepth: 16, Pattern: "BGGR", Algorithm: "bad-pixel"}

	req := base
	req.Raw = bytes.NewReader(hotPixelRaw(t))
	req.Pattern = "XYZW"
	_, err := svc.Inspect(ctx, req)
	require.ErrorIs(t, err, entity.ErrInvalidPattern)

	req = base
	req.Raw = bytes.NewReader(hotPixelRaw(t))
	req.Algorithm = "Dark Frame"
	_, err = svc.Inspect(ctx, req)
	require.ErrorIs(t, err, entity.ErrUnknownAlgorithm)

	req = base
	req.Raw = bytes.NewReader(hotPixelRaw(t)[:100])
	_, err = svc.Inspect(ctx, req)
	require.ErrorIs(t, err, entity.ErrInvalidGrid)

	req = base
	req.Raw = bytes.NewReader(hotPixelRaw(t))
	req.Params = map[string]any{"threshold": 1}
	_, err = svc.Inspect(ctx, req)
	require.ErrorIs(t, err, entity.ErrParameterOutOfRange)

	require.Zero(t, renderer.calls)
}

func TestInspectionService_ConfigureAndInspectUpload(t *testing.T) {
	svc, _ := newTestService(entity.Session{Width: 10, Height: 10, BitDepth: 10, Pattern: "Mono", Algorithm: "bad-line"})
	ctx := context.Background()

	for _, kv := range [][2]string{
		{"width", "40"},
		{"height", "40"},
		{"depth", "16"},
		{"pattern", "bggr"},
		{"axis", "rows"},
		{"algorithm", "Bad Pixel Detection"},
		{"threshold", "500"},
	} {
		_, err := svc.Configure(ctx, 1, 10, kv[0], kv[1])
		require.NoError(t, err, kv[0])
	}

	user, err := svc.users.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, "BGGR", user.Session.Pattern)
	require.Equal(t, "bad-pixel", user.Session.Algorithm)
	require.Equal(t, map[string]any{"threshold": 500}, user.Session.Params)

	out, err := svc.InspectUpload(ctx, 1, 10, hotPixelRaw(t))
	require.NoError(t, err)
	require.Equal(t, 1, out.Result.Total)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestInspectionService_ConfigureRejects(t *testing.T) {
	svc, _ := newTestService(entity.Session{Algorithm: "bad-pixel", Pattern: "Mono"})
	ctx := context.Background()

	_, err := svc.Configure(ctx, 1, 10, "width", "-3")
	require.Error(t, err)

	_, err = svc.Configure(ctx, 1, 10, "depth", "24")
	require.ErrorIs(t, err, entity.ErrInvalidGrid)

	_, err = svc.Configure(ctx, 1, 10, "pattern", "RGBW")
	require.ErrorIs(t, err, entity.ErrInvalidPattern)

	_, err = svc.Configure(ctx, 1, 10, "threshold", "5")
	require.ErrorIs(t, err, entity.ErrParameterOutOfRange)

	_, err = svc.Configure(ctx, 1, 10, "axis", "Rows")
	require.ErrorIs(t, err, entity.ErrParameterOutOfRange)

	_, err = svc.Configure(ctx, 1, 10, "algorithm", "nope")
	require.ErrorIs(t, err, entity.ErrUnknownAlgorithm)

	user, err := svc.users.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, "Mono", user.Session.Pattern)
	require.Empty(t, user.Session.Params)
}

func TestInspectionService_UploadWithHugeGeometry(t *testing.T) {
	svc, renderer := newTestService(entity.Session{Width: 10, Height: 10, BitDepth: 16, Pattern: "Mono", Algorithm: "bad-pixel"})
	ctx := context.Background()

	_, err := svc.Configure(ctx, 1, 10, "width", "2147483648")
	require.ErrorIs(t, err, entity.ErrInvalidGrid)
	_, err = svc.Configure(ctx, 1, 10, "height", "65537")
	require.ErrorIs(t, err, entity.ErrInvalidGrid)

	// каждая сторона в пределах, но кадр целиком слишком велик
	_, err = svc.Configure(ctx, 1, 10, "width", "65536")
	require.NoError(t, err)
	_, err = svc.Configure(ctx, 1, 10, "height", "65536")
	require.NoError(t, err)

	require.NotPanics(t, func() {
		_, err = svc.InspectUpload(ctx, 1, 10, []byte{1, 2, 3, 4})
	})
	require.ErrorIs(t, err, entity.ErrInvalidGrid)
	require.Zero(t, renderer.calls)

	user, err := svc.users.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestInspectionService_OverlayFileName(t *testing.T) {
	svc, _ := newTestService(entity.Session{})
	require.Equal(t, "overlay.png", svc.OverlayFileName())

	users := NewUserService(storage.NewMemoryUserRepository(entity.Session{}))
	tiff := NewInspectionService(users, vision.NewRegistry(vision.DefaultOverlayLimit), vision.NewRenderer("tiff"), nil)
	require.Equal(t, "overlay.tiff", tiff.OverlayFileName())

	bare := NewInspectionService(users, nil, nil, nil)
	require.Equal(t, "overlay.png", bare.OverlayFileName())
}
