package memory

import (
	"context"
	"sync"

	domain "exercise-api/internal/domain/exercise"
	repo "exercise-api/internal/repository/interfaces"
)

// ExerciseRepository хранит упражнения в памяти процесса.
//
// Записи лежат в порядке вставки, счётчик ID только растёт, поэтому
// ID удалённых упражнений повторно не выдаются. Все операции
// сериализуются через mutex.
type ExerciseRepository struct {
	mu        sync.RWMutex
	exercises []*domain.Exercise
	nextID    int64
}

// Убедимся на этапе компиляции, что структура реализует интерфейс.
var _ repo.ExerciseRepository = (*ExerciseRepository)(nil)

// NewExerciseRepository создает пустое хранилище, первый ID будет равен 1.
func NewExerciseRepository() *ExerciseRepository {
	return &ExerciseRepository{
		exercises: make([]*domain.Exercise, 0),
		nextID:    1,
	}
}

// List возвращает копии всех упражнений в порядке создания.
func (r *ExerciseRepository) List(_ context.Context) ([]*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Exercise, 0, len(r.exercises))
	for _, e := range r.exercises {
		out = append(out, clone(e))
	}
	return out, nil
}

// Create назначает следующий ID и добавляет упражнение в конец списка.
func (r *ExerciseRepository) Create(_ context.Context, exercise *domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise.ID = r.nextID
	r.nextID++
	r.exercises = append(r.exercises, clone(exercise))
	return nil
}

// Update применяет патч к упражнению и возвращает его актуальную копию.
func (r *ExerciseRepository) Update(_ context.Context, id int64, patch domain.Patch) (*domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repo.ErrNotFound
	}

	r.exercises[i].Apply(patch)
	return clone(r.exercises[i]), nil
}

// Delete удаляет упражнение, сохраняя порядок остальных.
func (r *ExerciseRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repo.ErrNotFound
	}

	copy(r.exercises[i:], r.exercises[i+1:])
	r.exercises[len(r.exercises)-1] = nil
	r.exercises = r.exercises[:len(r.exercises)-1]
	return nil
}

// indexOf ищет позицию упражнения линейным проходом. Вызывается под mutex.
func (r *ExerciseRepository) indexOf(id int64) int {
	for i, e := range r.exercises {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func clone(e *domain.Exercise) *domain.Exercise {
	c := *e
	return &c
}
