package port

// DetectorRegistry поиск детекторов по имени
type DetectorRegistry interface {
	// Get возвращает детектор по отображаемому имени или ключу
	Get(name string) (Detector, error)

	// All все детекторы в порядке регистрации
	All() []Detector
}
