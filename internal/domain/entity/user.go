package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu    UserState = "main_menu"    // В главном меню
	StateAwaitingRaw UserState = "awaiting_raw" // Ожидание RAW-файла
	StateProcessing  UserState = "processing"   // Обработка изображения
)

// Session параметры разбора RAW и запуска детектора для пользователя
type Session struct {
	Width     int
	Height    int
	BitDepth  int
	Pattern   string
	Algorithm string
	Params    map[string]any // параметры детектора, ещё не проверенные по схеме
}

// User представляет пользователя бота
type User struct {
	ID      int64     // Telegram User ID
	ChatID  int64     // Telegram Chat ID
	State   UserState // Текущее состояние пользователя
	Session Session   // Настройки проверки
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64, defaults Session) *User {
	if defaults.Params == nil {
		defaults.Params = make(map[string]any)
	}
	return &User{
		ID:      userID,
		ChatID:  chatID,
		State:   StateMainMenu,
		Session: defaults,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}
