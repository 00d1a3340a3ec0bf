//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"

	"gocv.io/x/gocv"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/infrastructure/rawio"
)

// Renderer рисует примитивы средствами OpenCV.
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
	mat, err := gocv.NewMatFromBytes(grid.Height(), grid.Width(), gocv.MatTypeCV8U, gray.Pix)
	if err != nil {
		return nil, err
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	canvas := gocv.NewMat()
	defer canvas.Close()
	gocv.CvtColor(mat, &canvas, gocv.ColorGrayToBGR)

	for _, o := range overlays {
		switch o.Kind {
		case entity.OverlayLine:
			gocv.Line(&canvas, o.From, o.To, o.Color, 1)
		case entity.OverlayPoint:
			gocv.Circle(&canvas, o.From, r.PointRadius, o.Color, 1)
		}
	}

	buf, err := gocv.IMEncode(gocv.FileExt(r.Extension()), canvas)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	return bytes.Clone(buf.GetBytes()), nil
}
