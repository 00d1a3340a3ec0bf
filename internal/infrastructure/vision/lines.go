package vision

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"sensor-inspector/internal/domain/entity"
)

// DetectLines ищет строки и столбцы, среднее которых отклоняется от медианы средних
// больше чем на threshold. Оси проверяются независимо, Both — объединение результатов.
func DetectLines(plane entity.ChannelPlane, threshold int, axis entity.LineAxis) (entity.AnomalyReport, error) {
	var report entity.AnomalyReport
	if !axis.Valid() {
		return report, fmt.Errorf("%w: axis %q", entity.ErrParameterOutOfRange, axis)
	}
	if plane.Rows() == 0 || plane.Cols() == 0 {
		return report, fmt.Errorf("%w: plane %dx%d is empty", entity.ErrGridTooSmall, plane.Cols(), plane.Rows())
	}

	if axis.Rows() {
		report.Rows = flagDeviations(rowMeans(plane), float64(threshold))
	}
	if axis.Cols() {
		report.Cols = flagDeviations(colMeans(plane), float64(threshold))
	}
	return report, nil
}

func rowMeans(plane entity.ChannelPlane) []float64 {
	means := make([]float64, plane.Rows())
	buf := make([]float64, plane.Cols())
	for y := range means {
		for x := range buf {
			buf[x] = float64(plane.At(y, x))
		}
		means[y] = stat.Mean(buf, nil)
	}
	return means
}

func colMeans(plane entity.ChannelPlane) []float64 {
	means := make([]float64, plane.Cols())
	buf := make([]float64, plane.Rows())
	for x := range means {
		for y := range buf {
			buf[y] = float64(plane.At(y, x))
		}
		means[x] = stat.Mean(buf, nil)
	}
	return means
}

// flagDeviations возвращает индексы по возрастанию, где |mean - median| > limit.
func flagDeviations(means []float64, limit float64) []int {
	baseline := median(append([]float64(nil), means...))

	var flagged []int
	for i, m := range means {
		if math.Abs(m-baseline) > limit {
			flagged = append(flagged, i)
		}
	}
	return flagged
}
