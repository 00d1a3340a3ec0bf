package vision

import (
	"context"
	"errors"
	"fmt"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/domain/port"
)

// BadPixelDetector ищет горячие и мёртвые пиксели по медиане соседей.
type BadPixelDetector struct {
	port.DetectorSeal

	Limit int // лимит выдачи примитивов
}

// NewBadPixelDetector создаёт детектор битых пикселей.
func NewBadPixelDetector(limit int) *BadPixelDetector {
	return &BadPixelDetector{Limit: limit}
}

func (d *BadPixelDetector) Kind() entity.DetectorKind { return entity.KindBadPixel }

func (d *BadPixelDetector) Key() string { return string(entity.KindBadPixel) }

func (d *BadPixelDetector) Name() string { return "Bad Pixel Detection" }

func (d *BadPixelDetector) Description() string {
	return "Detects hot/dead pixels using a simple threshold deviation from neighbors."
}

func (d *BadPixelDetector) Parameters() entity.Schema {
	return entity.Schema{
		{Name: "threshold", Type: entity.ParamInt, Default: 100, Bounded: true, Min: 10, Max: 4095, Label: "Threshold"},
	}
}

// Run проверяет каждую плоскость шаблона и собирает точки в координатах сетки.
func (d *BadPixelDetector) Run(ctx context.Context, grid *entity.SampleGrid, pattern entity.BayerPattern, params map[string]any) (*entity.DetectionResult, error) {
	if grid == nil {
		return nil, errors.New("bad pixel: grid is nil")
	}
	resolved, err := d.Parameters().Resolve(params)
	if err != nil {
		return nil, fmt.Errorf("bad pixel: %w", err)
	}
	threshold := resolved.Int("threshold")

	planes, err := Demux(grid, pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pixel: %w", err)
	}

	reports, skipped, err := detectPlanes(ctx, planes, func(plane entity.ChannelPlane) (entity.AnomalyReport, error) {
		return DetectPixels(plane, threshold)
	})
	if err != nil {
		return nil, fmt.Errorf("bad pixel: %w", err)
	}

	return buildResult(grid, d.Name(), "bad pixels", d.Limit, reports, skipped), nil
}

var _ port.Detector = (*BadPixelDetector)(nil)
