package sqldb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "exercise-api/internal/domain/exercise"
	repo "exercise-api/internal/repository/interfaces"
)

// exerciseModel представляет ORM-модель для таблицы exercises.
// Временные метки служебные и в доменную модель не попадают.
type exerciseModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Sets      int       `gorm:"column:sets;not null"`
	Reps      int       `gorm:"column:reps;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (exerciseModel) TableName() string {
	return "exercises"
}

// ExerciseRepository реализует repo.ExerciseRepository поверх GORM.
// Работает с PostgreSQL и SQLite, схема создаётся миграциями пакета database.
type ExerciseRepository struct {
	db *gorm.DB
}

// Убедимся на этапе компиляции, что структура реализует интерфейс.
var _ repo.ExerciseRepository = (*ExerciseRepository)(nil)

// NewExerciseRepository создает новый репозиторий упражнений.
func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// isSQLState проверяет код ошибки PostgreSQL.
// Драйвер pgx/v5 возвращает свой тип ошибки, поэтому есть fallback по тексту.
func isSQLState(err error, code string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return strings.Contains(err.Error(), "SQLSTATE "+code)
}

// translate приводит ошибки драйвера к ошибкам репозитория.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.ErrNotFound
	case isSQLState(err, "22003"): // numeric_value_out_of_range
		return fmt.Errorf("%w: %v", repo.ErrValueOutOfRange, err)
	default:
		return err
	}
}

func (m *exerciseModel) toDomain() *domain.Exercise {
	return &domain.Exercise{
		ID:   m.ID,
		Name: m.Name,
		Sets: m.Sets,
		Reps: m.Reps,
	}
}

// List возвращает все упражнения по возрастанию ID.
func (r *ExerciseRepository) List(ctx context.Context) ([]*domain.Exercise, error) {
	var models []exerciseModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, translate(err)
	}

	exercises := make([]*domain.Exercise, 0, len(models))
	for i := range models {
		exercises = append(exercises, models[i].toDomain())
	}
	return exercises, nil
}

// Create вставляет упражнение, ID назначает база данных.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	model := &exerciseModel{
		Name: exercise.Name,
		Sets: exercise.Sets,
		Reps: exercise.Reps,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err)
	}
	exercise.ID = model.ID
	return nil
}

// Update читает строку под блокировкой и обновляет только переданные поля.
// SQLite не поддерживает FOR UPDATE, диалект GORM пропускает этот clause.
func (r *ExerciseRepository) Update(ctx context.Context, id int64, patch domain.Patch) (*domain.Exercise, error) {
	var model exerciseModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			Take(&model).Error; err != nil {
			return err
		}

		if patch.IsEmpty() {
			return nil
		}

		updates := map[string]interface{}{}
		if patch.Sets != nil {
			updates["sets"] = *patch.Sets
		}
		if patch.Reps != nil {
			updates["reps"] = *patch.Reps
		}

		return tx.Model(&exerciseModel{}).
			Where("id = ?", id).
			Updates(updates).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	exercise := model.toDomain()
	exercise.Apply(patch)
	return exercise, nil
}

// Delete удаляет строку. Если ни одна строка не удалена, упражнения нет.
func (r *ExerciseRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&exerciseModel{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
