package rawio

import (
	"math/rand/v2"
)

// FlatBayer отсчёты с постоянным уровнем в каждом квадранте 2×2.
// baselines идут в порядке смещений (0,0), (0,1), (1,0), (1,1).
func FlatBayer(width, height int, baselines [4]uint16) []uint16 {
	data := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data[y*width+x] = baselines[(y%2)*2+x%2]
		}
	}
	return data
}

// Gradient тестовый кадр: градиент x*y, шум до 10% шкалы и квадрат
// 100×100 в центре на половине шкалы.
func Gradient(width, height, bitDepth int, seed uint64) []uint16 {
	maxVal := float64(uint32(1)<<uint(bitDepth) - 1)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	data := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		fy := unit(y, height)
		for x := 0; x < width; x++ {
			v := float64(uint16(unit(x, width)*fy*maxVal)) + float64(uint16(rng.Float64()*maxVal*0.1))
			if v > maxVal {
				v = maxVal
			}
			data[y*width+x] = uint16(v)
		}
	}

	cx, cy := width/2, height/2
	box := uint16(maxVal) / 2
	for y := max(cy-50, 0); y < min(cy+50, height); y++ {
		for x := max(cx-50, 0); x < min(cx+50, width); x++ {
			data[y*width+x] = box
		}
	}
	return data
}

// unit положение i на отрезке [0, 1] при n точках
func unit(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
