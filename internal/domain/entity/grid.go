package entity

import "fmt"

// SampleGrid неизменяемая сетка сырых отсчётов сенсора (H×W).
type SampleGrid struct {
	width    int
	height   int
	bitDepth int
	data     []uint16
}

// NewSampleGrid создаёт сетку поверх data в порядке строк.
// Срез не копируется: вызывающий код не должен менять его после передачи.
func NewSampleGrid(width, height, bitDepth int, data []uint16) (*SampleGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, width, height)
	}
	if bitDepth < 1 || bitDepth > 16 {
		return nil, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidGrid, bitDepth)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrInvalidGrid, len(data), width*height)
	}
	return &SampleGrid{width: width, height: height, bitDepth: bitDepth, data: data}, nil
}

// Width ширина сетки в отсчётах
func (g *SampleGrid) Width() int { return g.width }

// Height высота сетки в отсчётах
func (g *SampleGrid) Height() int { return g.height }

// BitDepth исходная разрядность отсчётов
func (g *SampleGrid) BitDepth() int { return g.bitDepth }

// At возвращает отсчёт в строке y и столбце x.
func (g *SampleGrid) At(y, x int) uint16 {
	return g.data[y*g.width+x]
}

// Row возвращает строку y только для чтения.
func (g *SampleGrid) Row(y int) []uint16 {
	return g.data[y*g.width : (y+1)*g.width : (y+1)*g.width]
}

// ChannelPlane прореженное представление сетки со смещением (DY, DX).
type ChannelPlane struct {
	grid   *SampleGrid
	DY     int
	DX     int
	stride int
	rows   int
	cols   int
}

// NewChannelPlane создаёт плоскость с шагом stride (1 для Mono, 2 для Байера).
func NewChannelPlane(grid *SampleGrid, dy, dx, stride int) ChannelPlane {
	return ChannelPlane{
		grid:   grid,
		DY:     dy,
		DX:     dx,
		stride: stride,
		rows:   ceilDiv(grid.height-dy, stride),
		cols:   ceilDiv(grid.width-dx, stride),
	}
}

// Rows число строк плоскости
func (p ChannelPlane) Rows() int { return p.rows }

// Cols число столбцов плоскости
func (p ChannelPlane) Cols() int { return p.cols }

// Stride шаг прореживания
func (p ChannelPlane) Stride() int { return p.stride }

// At возвращает отсчёт по локальным координатам плоскости.
func (p ChannelPlane) At(y, x int) uint16 {
	return p.grid.At(y*p.stride+p.DY, x*p.stride+p.DX)
}

// GlobalY переводит локальную строку в строку полной сетки.
func (p ChannelPlane) GlobalY(local int) int {
	return local*p.stride + p.DY
}

// GlobalX переводит локальный столбец в столбец полной сетки.
func (p ChannelPlane) GlobalX(local int) int {
	return local*p.stride + p.DX
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
