package database

import "errors"

// Ошибки уровня хранилища. Обработчики HTTP сопоставляют их со статусами
// через errors.Is, сами функции оборачивают их контекстом через fmt.Errorf.
var (
	ErrNotFound   = errors.New("запись не найдена")
	ErrConflict   = errors.New("конфликт данных")
	ErrValidation = errors.New("ошибка валидации")
)
