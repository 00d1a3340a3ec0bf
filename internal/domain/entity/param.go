package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParamType тип параметра детектора
type ParamType string

const (
	ParamInt    ParamType = "int"
	ParamFloat  ParamType = "float"
	ParamBool   ParamType = "bool"
	ParamChoice ParamType = "choice"
)

// ParamSpec описание одного параметра: по нему хост проверяет и рисует ввод.
type ParamSpec struct {
	Name    string
	Type    ParamType
	Default any
	Bounded bool // Min и Max заданы
	Min     float64
	Max     float64
	Options []string // для ParamChoice
	Label   string
}

// Schema упорядоченный список параметров детектора
type Schema []ParamSpec

// Params значения параметров после проверки по схеме
type Params map[string]any

// Lookup ищет параметр по имени.
func (s Schema) Lookup(name string) (ParamSpec, bool) {
	for _, spec := range s {
		if spec.Name == name {
			return spec, true
		}
	}
	return ParamSpec{}, false
}

// Defaults возвращает значения по умолчанию для всех параметров.
func (s Schema) Defaults() Params {
	out := make(Params, len(s))
	for _, spec := range s {
		out[spec.Name] = spec.Default
	}
	return out
}

// Resolve дополняет значения по умолчанию, приводит типы и проверяет границы.
// Значения не обрезаются: любое нарушение схемы — ErrParameterOutOfRange.
func (s Schema) Resolve(in map[string]any) (Params, error) {
	out := s.Defaults()
	for name, raw := range in {
		spec, ok := s.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown parameter %q", ErrParameterOutOfRange, name)
		}
		v, err := spec.Coerce(raw)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// Coerce приводит значение от хоста (число, строка из CLI или YAML) к типу параметра.
func (p ParamSpec) Coerce(raw any) (any, error) {
	switch p.Type {
	case ParamInt:
		f, err := toFloat(raw)
		if err != nil || f != math.Trunc(f) {
			return nil, p.errorf("expected integer, got %v", raw)
		}
		if err := p.checkRange(f); err != nil {
			return nil, err
		}
		return int(f), nil
	case ParamFloat:
		f, err := toFloat(raw)
		if err != nil || math.IsNaN(f) {
			return nil, p.errorf("expected number, got %v", raw)
		}
		if err := p.checkRange(f); err != nil {
			return nil, err
		}
		return f, nil
	case ParamBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, p.errorf("expected bool, got %q", v)
			}
			return b, nil
		}
		return nil, p.errorf("expected bool, got %v", raw)
	case ParamChoice:
		s, ok := raw.(string)
		if !ok {
			return nil, p.errorf("expected one of %v, got %v", p.Options, raw)
		}
		for _, opt := range p.Options {
			if strings.EqualFold(opt, strings.TrimSpace(s)) {
				return opt, nil
			}
		}
		return nil, p.errorf("expected one of %v, got %q", p.Options, s)
	}
	return nil, p.errorf("unsupported parameter type %q", p.Type)
}

func (p ParamSpec) checkRange(f float64) error {
	if p.Bounded && (f < p.Min || f > p.Max) {
		return p.errorf("%v not in [%v, %v]", f, p.Min, p.Max)
	}
	return nil
}

func (p ParamSpec) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrParameterOutOfRange, p.Name, fmt.Sprintf(format, args...))
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	}
	return 0, fmt.Errorf("not a number: %T", raw)
}

// Int значение целочисленного параметра
func (p Params) Int(name string) int {
	v, _ := p[name].(int)
	return v
}

// Float значение вещественного параметра
func (p Params) Float(name string) float64 {
	switch v := p[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Bool значение логического параметра
func (p Params) Bool(name string) bool {
	v, _ := p[name].(bool)
	return v
}

// Choice значение параметра-выбора
func (p Params) Choice(name string) string {
	v, _ := p[name].(string)
	return v
}
