package entity

// DetectorKind вид детектора. Набор закрыт.
type DetectorKind string

const (
	KindBadPixel DetectorKind = "bad-pixel"
	KindBadLine  DetectorKind = "bad-line"
)

// LineAxis оси проверки детектора строк и столбцов
type LineAxis string

const (
	AxisRows LineAxis = "Rows"
	AxisCols LineAxis = "Cols"
	AxisBoth LineAxis = "Both"
)

// Rows нужна ли проверка строк
func (a LineAxis) Rows() bool { return a == AxisRows || a == AxisBoth }

// Cols нужна ли проверка столбцов
func (a LineAxis) Cols() bool { return a == AxisCols || a == AxisBoth }

// Valid одно из трёх значений
func (a LineAxis) Valid() bool { return a == AxisRows || a == AxisCols || a == AxisBoth }
