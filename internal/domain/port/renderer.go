package port

import "sensor-inspector/internal/domain/entity"

// OverlayRenderer рисует примитивы поверх нормализованного изображения
type OverlayRenderer interface {
	// Render возвращает закодированное изображение с подсветкой аномалий
	Render(grid *entity.SampleGrid, overlays []entity.Overlay) ([]byte, error)

	// Extension расширение файла результата, например ".png"
	Extension() string
}
