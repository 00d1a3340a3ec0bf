package entity

import "errors"

var (
	// ErrInvalidPattern шаблон вне пяти известных значений
	ErrInvalidPattern = errors.New("invalid bayer pattern")
	// ErrGridTooSmall плоскость меньше минимума детектора; не фатальна
	ErrGridTooSmall = errors.New("grid too small")
	// ErrParameterOutOfRange параметр нарушает схему детектора
	ErrParameterOutOfRange = errors.New("parameter out of range")
	// ErrUnknownAlgorithm алгоритм не зарегистрирован
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrInvalidGrid некорректные размеры или разрядность сетки
	ErrInvalidGrid = errors.New("invalid sample grid")
)
