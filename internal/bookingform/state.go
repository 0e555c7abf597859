package bookingform

// State состояние жизненного цикла отправки формы
// Четыре состояния исключают невозможные комбинации
// (одновременно loading и error и т.п.)
type State string

const (
	// StateIdle форма редактируется, отправка доступна
	StateIdle State = "idle"

	// StateLoading заявка отправлена, ответ еще не получен
	// Повторная отправка из этого состояния запрещена
	StateLoading State = "loading"

	// StateSuccess сервер подтвердил бронирование
	StateSuccess State = "success"

	// StateError отправка завершилась ошибкой, доступен повтор
	StateError State = "error"
)

// String возвращает строковое представление состояния
func (s State) String() string {
	return string(s)
}
