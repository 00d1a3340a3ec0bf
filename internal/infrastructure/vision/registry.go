package vision

import (
	"fmt"
	"strings"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/domain/port"
)

// Registry поиск детектора по имени или ключу. Порядок — порядок регистрации.
type Registry struct {
	detectors []port.Detector
	byName    map[string]port.Detector
}

// NewRegistry создаёт реестр со всеми встроенными детекторами.
func NewRegistry(limit int) *Registry {
	r := &Registry{byName: make(map[string]port.Detector)}
	r.register(NewBadPixelDetector(limit))
	r.register(NewBadLineDetector(limit))
	return r
}

func (r *Registry) register(d port.Detector) {
	r.detectors = append(r.detectors, d)
	r.byName[strings.ToLower(d.Key())] = d
	r.byName[strings.ToLower(d.Name())] = d
}

// Get возвращает детектор по отображаемому имени или ключу.
func (r *Registry) Get(name string) (port.Detector, error) {
	if d, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", entity.ErrUnknownAlgorithm, name)
}

// Names отображаемые имена в порядке регистрации
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.detectors))
	for _, d := range r.detectors {
		names = append(names, d.Name())
	}
	return names
}

// All все детекторы в порядке регистрации
func (r *Registry) All() []port.Detector {
	return append([]port.Detector(nil), r.detectors...)
}
