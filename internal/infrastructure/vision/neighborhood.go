package vision

import (
	"fmt"
	"image"
	"math"

	"sensor-inspector/internal/domain/entity"
)

// minNeighborhoodSide минимальная сторона плоскости, при которой есть внутренние отсчёты
const minNeighborhoodSide = 3

// DetectPixels ищет отсчёты, отличающиеся от медианы 8 соседей больше чем на threshold.
// Крайний ряд плоскости не проверяется. Точки идут в порядке строк.
func DetectPixels(plane entity.ChannelPlane, threshold int) (entity.AnomalyReport, error) {
	var report entity.AnomalyReport
	h, w := plane.Rows(), plane.Cols()
	if h < minNeighborhoodSide || w < minNeighborhoodSide {
		return report, fmt.Errorf("%w: plane %dx%d, need at least %dx%d",
			entity.ErrGridTooSmall, w, h, minNeighborhoodSide, minNeighborhoodSide)
	}

	limit := float64(threshold)
	var neighbors [8]float64
	for y := 1; y <= h-2; y++ {
		for x := 1; x <= w-2; x++ {
			i := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					neighbors[i] = float64(plane.At(y+dy, x+dx))
					i++
				}
			}
			center := float64(plane.At(y, x))
			if math.Abs(center-median(neighbors[:])) > limit {
				report.Points = append(report.Points, image.Pt(x, y))
			}
		}
	}
	return report, nil
}
