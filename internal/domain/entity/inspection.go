package entity

// DetectionResult итог работы детектора над сеткой.
type DetectionResult struct {
	Grid      *SampleGrid // исходная сетка, не изменяется
	Algorithm string      // имя детектора
	Overlays  []Overlay   // не больше лимита выдачи
	Total     int         // всего найдено, может превышать len(Overlays)
	Skipped   int         // плоскости, слишком малые для детектора
	Message   string      // сводка для пользователя
}

// HasDefects флаг наличия аномалий
func (r *DetectionResult) HasDefects() bool {
	return r.Total > 0
}

// Truncated сообщает, что выдача обрезана лимитом.
func (r *DetectionResult) Truncated() bool {
	return r.Total > len(r.Overlays)
}
