package interfaces

import (
	"context"
	"errors"

	domain "exercise-api/internal/domain/exercise"
)

// ErrNotFound возвращается, когда сущность не найдена в хранилище.
var ErrNotFound = errors.New("entity not found")

// ErrValueOutOfRange возвращается, когда значение не помещается в колонку хранилища.
var ErrValueOutOfRange = errors.New("value out of range")

// ExerciseRepository определяет контракт хранилища упражнений.
//
// Все реализации возвращают копии записей: изменение результата не влияет
// на сохранённое состояние. Операции атомарны относительно друг друга.
type ExerciseRepository interface {
	// List возвращает все упражнения в порядке создания (по возрастанию ID).
	// Пустое хранилище даёт пустой, но не nil срез.
	List(ctx context.Context) ([]*domain.Exercise, error)

	// Create сохраняет новое упражнение, назначает ему следующий ID
	// и записывает его в переданную структуру.
	Create(ctx context.Context, exercise *domain.Exercise) error

	// Update применяет частичное обновление к упражнению с заданным ID.
	// Возвращает (nil, ErrNotFound), если упражнение не найдено.
	Update(ctx context.Context, id int64, patch domain.Patch) (*domain.Exercise, error)

	// Delete удаляет упражнение. Возвращает ErrNotFound, если его нет.
	Delete(ctx context.Context, id int64) error
}
