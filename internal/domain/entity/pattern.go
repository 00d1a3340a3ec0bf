package entity

import (
	"fmt"
	"strings"
)

// BayerPattern тип мозаики цветового фильтра
type BayerPattern int

const (
	PatternMono BayerPattern = iota // без мозаики, одна плоскость
	PatternRGGB
	PatternBGGR
	PatternGRBG
	PatternGBRG
)

var patternNames = map[BayerPattern]string{
	PatternMono: "Mono",
	PatternRGGB: "RGGB",
	PatternBGGR: "BGGR",
	PatternGRBG: "GRBG",
	PatternGBRG: "GBRG",
}

// ParsePattern разбирает название шаблона. Неизвестное название — ошибка.
func ParsePattern(s string) (BayerPattern, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MONO", "MONO/NONE", "NONE":
		return PatternMono, nil
	case "RGGB":
		return PatternRGGB, nil
	case "BGGR":
		return PatternBGGR, nil
	case "GRBG":
		return PatternGRBG, nil
	case "GBRG":
		return PatternGBRG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
}

// Valid сообщает, является ли значение одним из пяти известных шаблонов.
func (p BayerPattern) Valid() bool {
	_, ok := patternNames[p]
	return ok
}

// IsBayer true для четырёх байеровских шаблонов
func (p BayerPattern) IsBayer() bool {
	return p.Valid() && p != PatternMono
}

func (p BayerPattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("BayerPattern(%d)", int(p))
}
