package rawio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"sensor-inspector/internal/domain/entity"
)

// BytesPerSample размер отсчёта в файле: до 8 бит — байт, до 16 — два байта LE.
func BytesPerSample(bitDepth int) (int, error) {
	switch {
	case bitDepth >= 1 && bitDepth <= 8:
		return 1, nil
	case bitDepth > 8 && bitDepth <= 16:
		return 2, nil
	}
	return 0, fmt.Errorf("%w: unsupported bit depth %d", entity.ErrInvalidGrid, bitDepth)
}

// MaxDimension наибольшая ширина или высота кадра.
const MaxDimension = 1 << 16

// MaxSamples наибольшее число отсчётов в кадре (256 Мпикс).
const MaxSamples = 1 << 28

// CheckGeometry проверяет размеры кадра и возвращает число отсчётов
// и размер файла в байтах.
func CheckGeometry(width, height, bitDepth int) (samples, size int, err error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return 0, 0, fmt.Errorf("%w: dimensions %dx%d", entity.ErrInvalidGrid, width, height)
	}
	bps, err := BytesPerSample(bitDepth)
	if err != nil {
		return 0, 0, err
	}
	samples = width * height
	if samples > MaxSamples {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %d samples", entity.ErrInvalidGrid, width, height, MaxSamples)
	}
	return samples, samples * bps, nil
}

// Load читает RAW без заголовка. Лишние байты в конце игнорируются,
// нехватка данных — ошибка. Буфер растёт по мере чтения, поэтому короткий
// файл не приводит к выделению памяти под весь заявленный кадр.
func Load(r io.Reader, width, height, bitDepth int) (*entity.SampleGrid, error) {
	n, size, err := CheckGeometry(width, height, bitDepth)
	if err != nil {
		return nil, err
	}
	bps := size / n

	buf, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, fmt.Errorf("read raw: %w", err)
	}
	if len(buf) < size {
		return nil, fmt.Errorf("%w: file size %d too small for dimensions %dx%d", entity.ErrInvalidGrid, len(buf), width, height)
	}

	data := make([]uint16, n)
	if bps == 1 {
		for i, b := range buf {
			data[i] = uint16(b)
		}
	} else {
		for i := range data {
			data[i] = binary.LittleEndian.Uint16(buf[2*i:])
		}
	}

	return entity.NewSampleGrid(width, height, bitDepth, data)
}

// LoadFile открывает файл и читает его через Load.
func LoadFile(path string, width, height, bitDepth int) (*entity.SampleGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw: %w", err)
	}
	defer f.Close()

	return Load(bufio.NewReader(f), width, height, bitDepth)
}

// Write записывает сетку в том же формате, что читает Load.
func Write(w io.Writer, grid *entity.SampleGrid) error {
	bps, err := BytesPerSample(grid.BitDepth())
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	line := make([]byte, grid.Width()*bps)
	for y := 0; y < grid.Height(); y++ {
		for x, v := range grid.Row(y) {
			if bps == 1 {
				line[x] = byte(v)
			} else {
				binary.LittleEndian.PutUint16(line[2*x:], v)
			}
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write raw: %w", err)
		}
	}
	return bw.Flush()
}

// Normalize переводит отсчёты в 8 бит для показа: v / (2^depth - 1) * 255.
func Normalize(grid *entity.SampleGrid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, grid.Width(), grid.Height()))
	maxVal := float64(uint32(1)<<uint(grid.BitDepth()) - 1)
	for y := 0; y < grid.Height(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+grid.Width()]
		for x, v := range grid.Row(y) {
			f := float64(v) / maxVal * 255
			if f > 255 {
				f = 255
			}
			row[x] = uint8(f)
		}
	}
	return img
}
