package exercise

import (
	"context"
	"errors"
	"strings"

	domain "exercise-api/internal/domain/exercise"
	repo "exercise-api/internal/repository/interfaces"
	"exercise-api/pkg/logger"
)

// ErrNameRequired возвращается, когда при создании не передано название.
var ErrNameRequired = errors.New("exercise name is required")

// Service описывает usecase-слой для работы с упражнениями.
type Service interface {
	// List возвращает все упражнения в порядке создания.
	List(ctx context.Context) ([]*domain.Exercise, error)

	// Create создаёт упражнение с нулевыми подходами и повторениями.
	// Возвращает ErrNameRequired, если название пустое.
	Create(ctx context.Context, name string) (*domain.Exercise, error)

	// Update меняет только переданные поля. Возвращает repo.ErrNotFound для неизвестного ID.
	Update(ctx context.Context, id int64, input UpdateInput) (*domain.Exercise, error)

	// Delete удаляет упражнение. Возвращает repo.ErrNotFound для неизвестного ID.
	Delete(ctx context.Context, id int64) error
}

// UpdateInput описывает допустимые изменения упражнения. Все поля опциональны.
// Значения не проверяются на знак.
type UpdateInput struct {
	Sets *int
	Reps *int
}

type service struct {
	exercises repo.ExerciseRepository
	log       logger.Logger
}

// NewService создаёт новый сервис упражнений.
func NewService(exercises repo.ExerciseRepository, log logger.Logger) Service {
	if log == nil {
		log = logger.Default()
	}
	return &service{exercises: exercises, log: log}
}

func (s *service) List(ctx context.Context) ([]*domain.Exercise, error) {
	list, err := s.exercises.List(ctx)
	if err != nil {
		s.log.Error("list exercises failed", map[string]any{"err": err})
		return nil, err
	}
	if list == nil {
		list = []*domain.Exercise{}
	}
	return list, nil
}

func (s *service) Create(ctx context.Context, name string) (*domain.Exercise, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	e := domain.NewExercise(name)
	if err := s.exercises.Create(ctx, e); err != nil {
		s.log.Error("create exercise failed", map[string]any{"name": name, "err": err})
		return nil, err
	}

	s.log.Info("exercise created", map[string]any{"id": e.ID, "name": e.Name})
	return e, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Exercise, error) {
	e, err := s.exercises.Update(ctx, id, domain.Patch{Sets: input.Sets, Reps: input.Reps})
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.log.Error("update exercise failed", map[string]any{"id": id, "err": err})
		}
		return nil, err
	}

	s.log.Info("exercise updated", map[string]any{"id": e.ID, "sets": e.Sets, "reps": e.Reps})
	return e, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.exercises.Delete(ctx, id); err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.log.Error("delete exercise failed", map[string]any{"id": id, "err": err})
		}
		return err
	}

	s.log.Info("exercise deleted", map[string]any{"id": id})
	return nil
}
