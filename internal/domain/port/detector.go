package port

import (
	"context"

	"sensor-inspector/internal/domain/entity"
)

// Detector интерфейс детектора аномалий RAW-изображения.
// Набор реализаций закрыт: реализация встраивает DetectorSeal,
// каждая соответствует одному entity.DetectorKind.
type Detector interface {
	sealedDetector()

	// Kind вид детектора
	Kind() entity.DetectorKind

	// Key короткое имя для CLI и бота
	Key() string

	// Name отображаемое имя
	Name() string

	// Description краткое описание алгоритма
	Description() string

	// Parameters схема параметров детектора
	Parameters() entity.Schema

	// Run проверяет параметры и ищет аномалии на сетке
	Run(ctx context.Context, grid *entity.SampleGrid, pattern entity.BayerPattern, params map[string]any) (*entity.DetectionResult, error)
}

// DetectorSeal встраивается в детекторы движка и закрывает интерфейс Detector.
type DetectorSeal struct{}

func (DetectorSeal) sealedDetector() {}
