package vision

import (
	"fmt"

	"sensor-inspector/internal/domain/entity"
)

// DefaultOverlayLimit лимит выдачи примитивов по умолчанию
const DefaultOverlayLimit = 2000

// planeReport отчёт плоскости вместе с самой плоскостью для пересчёта координат
type planeReport struct {
	plane  entity.ChannelPlane
	report entity.AnomalyReport
}

// overlayBuilder собирает примитивы до лимита, но считает все находки.
type overlayBuilder struct {
	limit    int
	width    int
	height   int
	overlays []entity.Overlay
	total    int
}

func newOverlayBuilder(limit, width, height int) *overlayBuilder {
	if limit < 0 {
		limit = 0
	}
	return &overlayBuilder{limit: limit, width: width, height: height}
}

func (b *overlayBuilder) add(o entity.Overlay) {
	b.total++
	if len(b.overlays) < b.limit {
		b.overlays = append(b.overlays, o)
	}
}

// addPlane переводит находки плоскости в глобальные координаты:
// сначала строки, затем столбцы, затем точки в порядке строк.
func (b *overlayBuilder) addPlane(pr planeReport) {
	for _, r := range pr.report.Rows {
		y := pr.plane.GlobalY(r)
		b.add(entity.NewLineOverlay(0, y, b.width, y))
	}
	for _, c := range pr.report.Cols {
		x := pr.plane.GlobalX(c)
		b.add(entity.NewLineOverlay(x, 0, x, b.height))
	}
	for _, pt := range pr.report.Points {
		b.add(entity.NewPointOverlay(pr.plane.GlobalX(pt.X), pr.plane.GlobalY(pt.Y)))
	}
}

// summary текст для пользователя; при обрезке указывает общее число находок.
func (b *overlayBuilder) summary(noun string, skipped int) string {
	msg := fmt.Sprintf("Detected %d %s.", b.total, noun)
	if b.total > len(b.overlays) {
		msg = fmt.Sprintf("Detected %d %s (showing first %d).", b.total, noun, len(b.overlays))
	}
	if skipped > 0 {
		msg += fmt.Sprintf(" %d plane(s) too small to analyse.", skipped)
	}
	return msg
}

func buildResult(grid *entity.SampleGrid, algorithm, noun string, limit int, reports []planeReport, skipped int) *entity.DetectionResult {
	b := newOverlayBuilder(limit, grid.Width(), grid.Height())
	for _, pr := range reports {
		b.addPlane(pr)
	}
	overlays := b.overlays
	if overlays == nil {
		overlays = []entity.Overlay{}
	}
	return &entity.DetectionResult{
		Grid:      grid,
		Algorithm: algorithm,
		Overlays:  overlays,
		Total:     b.total,
		Skipped:   skipped,
		Message:   b.summary(noun, skipped),
	}
}
