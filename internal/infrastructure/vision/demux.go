package vision

import (
	"fmt"

	"sensor-inspector/internal/domain/entity"
)

// bayerOffsets порядок обхода плоскостей (dy, dx). От порядка зависит порядок выдачи.
var bayerOffsets = [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// Demux делит сетку на плоскости по чётности строк и столбцов.
// Роли R/G/B не различаются: все четыре квадранта обрабатываются одинаково.
func Demux(grid *entity.SampleGrid, pattern entity.BayerPattern) ([]entity.ChannelPlane, error) {
	if !pattern.Valid() {
		return nil, fmt.Errorf("demux: %w: %s", entity.ErrInvalidPattern, pattern)
	}
	if !pattern.IsBayer() {
		return []entity.ChannelPlane{entity.NewChannelPlane(grid, 0, 0, 1)}, nil
	}

	planes := make([]entity.ChannelPlane, 0, len(bayerOffsets))
	for _, off := range bayerOffsets {
		planes = append(planes, entity.NewChannelPlane(grid, off[0], off[1], 2))
	}
	return planes, nil
}
