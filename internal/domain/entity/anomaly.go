package entity

import (
	"image"
	"image/color"
)

// AnomalyReport найденные аномалии одной плоскости в её локальных координатах.
type AnomalyReport struct {
	Rows   []int         // номера аномальных строк
	Cols   []int         // номера аномальных столбцов
	Points []image.Point // аномальные отсчёты, X — столбец, Y — строка
}

// Count общее число находок в отчёте
func (r AnomalyReport) Count() int {
	return len(r.Rows) + len(r.Cols) + len(r.Points)
}

// Empty сообщает, что аномалий не найдено.
func (r AnomalyReport) Empty() bool {
	return r.Count() == 0
}

// OverlayKind вид примитива визуализации
type OverlayKind string

const (
	OverlayPoint OverlayKind = "point"
	OverlayLine  OverlayKind = "line"
)

var (
	// HotPixelColor цвет маркера для битых пикселей
	HotPixelColor = color.RGBA{R: 255, A: 255}
	// LineDefectColor цвет линии для битых строк и столбцов
	LineDefectColor = color.RGBA{R: 255, G: 255, A: 255}
)

// Overlay примитив визуализации в координатах полного изображения.
// Для точки From и To совпадают.
type Overlay struct {
	Kind  OverlayKind
	From  image.Point
	To    image.Point
	Color color.RGBA
}

// NewPointOverlay создаёт маркер битого пикселя.
func NewPointOverlay(x, y int) Overlay {
	p := image.Pt(x, y)
	return Overlay{Kind: OverlayPoint, From: p, To: p, Color: HotPixelColor}
}

// NewLineOverlay создаёт линию битой строки или столбца.
func NewLineOverlay(x1, y1, x2, y2 int) Overlay {
	return Overlay{Kind: OverlayLine, From: image.Pt(x1, y1), To: image.Pt(x2, y2), Color: LineDefectColor}
}
