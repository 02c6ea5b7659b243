package usecase

// ViewState — состояние представления: Loading, Loaded или Failed.
// Одновременно «загрузка» и «ошибка» невозможны по построению.
type ViewState[T any] interface {
	value() (T, bool)
}

type Loading[T any] struct{}

type Loaded[T any] struct {
	Value T
}

// Failed хранит статичное сообщение для пользователя и исходную ошибку для логов и кодов ответа.
type Failed[T any] struct {
	Message string
	Err     error
}

func (Loading[T]) value() (T, bool) {
	var zero T
	return zero, false
}

func (l Loaded[T]) value() (T, bool) {
	return l.Value, true
}

func (Failed[T]) value() (T, bool) {
	var zero T
	return zero, false
}

// ViewError — ошибка представления в состоянии Failed.
type ViewError struct {
	Message string
	Err     error
}

func (v *ViewError) Error() string {
	if v.Err == nil {
		return v.Message
	}

	return v.Message + ": " + v.Err.Error()
}

func (v *ViewError) Unwrap() error {
	return v.Err
}

// stateErr превращает Failed в *ViewError, остальные состояния — в nil.
func stateErr[T any](s ViewState[T]) error {
	if f, ok := s.(Failed[T]); ok {
		return &ViewError{Message: f.Message, Err: f.Err}
	}

	return nil
}
