package vision

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"sensor-inspector/internal/domain/entity"
)

// planeFunc детектор одной плоскости
type planeFunc func(plane entity.ChannelPlane) (entity.AnomalyReport, error)

// detectPlanes запускает detect по плоскостям параллельно.
// Результаты пишутся в слоты по индексу плоскости, поэтому порядок не зависит
// от порядка завершения. ErrGridTooSmall даёт пустой отчёт и учитывается в skipped.
func detectPlanes(ctx context.Context, planes []entity.ChannelPlane, detect planeFunc) ([]planeReport, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	reports := make([]planeReport, len(planes))
	tooSmall := make([]bool, len(planes))

	var g errgroup.Group
	for i, plane := range planes {
		g.Go(func() error {
			report, err := detect(plane)
			if errors.Is(err, entity.ErrGridTooSmall) {
				tooSmall[i] = true
				report, err = entity.AnomalyReport{}, nil
			}
			if err != nil {
				return err
			}
			reports[i] = planeReport{plane: plane, report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	skipped := 0
	for _, s := range tooSmall {
		if s {
			skipped++
		}
	}
	return reports, skipped, nil
}
