package vision

import (
	"context"
	"errors"
	"fmt"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/domain/port"
)

// BadLineDetector ищет битые строки и столбцы по средним значениям линий.
type BadLineDetector struct {
	port.DetectorSeal

	Limit int // лимит выдачи примитивов
}

// NewBadLineDetector создаёт детектор битых линий.
func NewBadLineDetector(limit int) *BadLineDetector {
	return &BadLineDetector{Limit: limit}
}

func (d *BadLineDetector) Kind() entity.DetectorKind { return entity.KindBadLine }

func (d *BadLineDetector) Key() string { return string(entity.KindBadLine) }

func (d *BadLineDetector) Name() string { return "Bad Line Detection" }

func (d *BadLineDetector) Description() string {
	return "Detects bad rows or columns by analyzing line averages."
}

func (d *BadLineDetector) Parameters() entity.Schema {
	return entity.Schema{
		{Name: "threshold", Type: entity.ParamInt, Default: 100, Bounded: true, Min: 1, Max: 10000, Label: "Threshold"},
		{
			Name:    "axis",
			Type:    entity.ParamChoice,
			Default: string(entity.AxisBoth),
			Options: []string{string(entity.AxisRows), string(entity.AxisCols), string(entity.AxisBoth)},
			Label:   "Detect Axis",
		},
	}
}

// Run проверяет линии каждой плоскости; для плоскости сначала идут строки, потом столбцы.
func (d *BadLineDetector) Run(ctx context.Context, grid *entity.SampleGrid, pattern entity.BayerPattern, params map[string]any) (*entity.DetectionResult, error) {
	if grid == nil {
		return nil, errors.New("bad line: grid is nil")
	}
	resolved, err := d.Parameters().Resolve(params)
	if err != nil {
		return nil, fmt.Errorf("bad line: %w", err)
	}
	threshold := resolved.Int("threshold")
	axis := entity.LineAxis(resolved.Choice("axis"))

	planes, err := Demux(grid, pattern)
	if err != nil {
		return nil, fmt.Errorf("bad line: %w", err)
	}

	reports, skipped, err := detectPlanes(ctx, planes, func(plane entity.ChannelPlane) (entity.AnomalyReport, error) {
		return DetectLines(plane, threshold, axis)
	})
	if err != nil {
		return nil, fmt.Errorf("bad line: %w", err)
	}

	return buildResult(grid, d.Name(), "bad lines", d.Limit, reports, skipped), nil
}

var _ port.Detector = (*BadLineDetector)(nil)
