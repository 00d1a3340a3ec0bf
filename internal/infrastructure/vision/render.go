//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/tiff"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/infrastructure/rawio"
)

// Renderer рисует примитивы поверх нормализованного кадра без OpenCV.
type Renderer struct {
	Format      string // "png" или "tiff"
	PointRadius int
}

// NewRenderer создаёт рендерер с форматом по умолчанию png.
func NewRenderer(format string) *Renderer {
	if format == "" {
		format = "png"
	}
	return &Renderer{Format: format, PointRadius: 2}
}

// Extension расширение файла результата
func (r *Renderer) Extension() string {
	return "." + r.Format
}

// Render возвращает кадр в оттенках серого с красными точками и жёлтыми линиями.
func (r *Renderer) Render(grid *entity.SampleGrid, overlays []entity.Overlay) ([]byte, error) {
	gray := rawio.Normalize(grid)
	canvas := image.NewRGBA(gray.Bounds())
	draw.Draw(canvas, canvas.Bounds(), gray, image.Point{}, draw.Src)

	for _, o := range overlays {
		switch o.Kind {
		case entity.OverlayLine:
			drawLine(canvas, o)
		case entity.OverlayPoint:
			drawMarker(canvas, o, r.PointRadius)
		}
	}

	var buf bytes.Buffer
	switch r.Format {
	case "png":
		if err := png.Encode(&buf, canvas); err != nil {
			return nil, err
		}
	case "tiff", "tif":
		if err := tiff.Encode(&buf, canvas, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported render format %q", r.Format)
	}
	return buf.Bytes(), nil
}

// drawLine рисует отрезок по Брезенхэму, точки вне кадра отбрасываются.
func drawLine(img *image.RGBA, o entity.Overlay) {
	x0, y0, x1, y1 := o.From.X, o.From.Y, o.To.X, o.To.Y
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, o.Color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// drawMarker рисует квадратную рамку радиуса r вокруг точки.
func drawMarker(img *image.RGBA, o entity.Overlay, r int) {
	c := o.From
	if r <= 0 {
		img.SetRGBA(c.X, c.Y, o.Color)
		return
	}
	for i := -r; i <= r; i++ {
		img.SetRGBA(c.X+i, c.Y-r, o.Color)
		img.SetRGBA(c.X+i, c.Y+r, o.Color)
		img.SetRGBA(c.X-r, c.Y+i, o.Color)
		img.SetRGBA(c.X+r, c.Y+i, o.Color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
