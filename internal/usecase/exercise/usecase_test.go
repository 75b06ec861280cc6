package exercise_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domain "exercise-api/internal/domain/exercise"
	repo "exercise-api/internal/repository/interfaces"
	"exercise-api/internal/repository/memory"
	exerciseuc "exercise-api/internal/usecase/exercise"
	"exercise-api/pkg/logger"
)

// ==== Fakes ====

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(msg string, _ map[string]any)  { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Error(msg string, _ map[string]any) { l.errors = append(l.errors, msg) }

// failingRepo возвращает одну и ту же ошибку из всех методов.
type failingRepo struct{ err error }

func (r *failingRepo) List(context.Context) ([]*domain.Exercise, error) { return nil, r.err }
func (r *failingRepo) Create(context.Context, *domain.Exercise) error   { return r.err }
func (r *failingRepo) Update(context.Context, int64, domain.Patch) (*domain.Exercise, error) {
	return nil, r.err
}
func (r *failingRepo) Delete(context.Context, int64) error { return r.err }

// nilListRepo имитирует хранилище, возвращающее nil вместо пустого среза.
type nilListRepo struct{ *failingRepo }

func (nilListRepo) List(context.Context) ([]*domain.Exercise, error) { return nil, nil }

func intPtr(v int) *int { return &v }

// ==== Tests ====

func TestCreate_AssignsIDAndZeroCounters(t *testing.T) {
	svc := exerciseuc.NewService(memory.NewExerciseRepository(), logger.Nop())

	e, err := svc.Create(context.Background(), "Squat")
	require.NoError(t, err)
	require.Equal(t, domain.Exercise{ID: 1, Name: "Squat"}, *e)
}

func TestCreate_EmptyName(t *testing.T) {
	store := memory.NewExerciseRepository()
	svc := exerciseuc.NewService(store, logger.Nop())

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), name)
		require.ErrorIs(t, err, exerciseuc.ErrNameRequired)
	}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCreate_KeepsNameAsSupplied(t *testing.T) {
	svc := exerciseuc.NewService(memory.NewExerciseRepository(), logger.Nop())

	e, err := svc.Create(context.Background(), " Front Squat ")
	require.NoError(t, err)
	require.Equal(t, " Front Squat ", e.Name)
}

func TestUpdate_OnlySets(t *testing.T) {
	svc := exerciseuc.NewService(memory.NewExerciseRepository(), logger.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Squat")
	require.NoError(t, err)
	_, err = svc.Update(ctx, created.ID, exerciseuc.UpdateInput{Reps: intPtr(10)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, exerciseuc.UpdateInput{Sets: intPtr(4)})
	require.NoError(t, err)
	require.Equal(t, domain.Exercise{ID: created.ID, Name: "Squat", Sets: 4, Reps: 10}, *updated)
}

func TestUpdate_NotFoundIsNotLoggedAsError(t *testing.T) {
	log := &recordingLogger{}
	svc := exerciseuc.NewService(memory.NewExerciseRepository(), log)

	_, err := svc.Update(context.Background(), 999, exerciseuc.UpdateInput{Sets: intPtr(1)})
	require.ErrorIs(t, err, repo.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), 999), repo.ErrNotFound)
	require.Empty(t, log.errors)
}

func TestDelete_Removes(t *testing.T) {
	log := &recordingLogger{}
	svc := exerciseuc.NewService(memory.NewExerciseRepository(), log)
	ctx := context.Background()

	e, err := svc.Create(ctx, "Squat")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, e.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
	require.Equal(t, []string{"exercise created", "exercise deleted"}, log.infos)
}

func TestRepositoryErrorsArePropagatedAndLogged(t *testing.T) {
	boom := errors.New("connection refused")
	log := &recordingLogger{}
	svc := exerciseuc.NewService(&failingRepo{err: boom}, log)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, boom)
	_, err = svc.Create(ctx, "Squat")
	require.ErrorIs(t, err, boom)
	_, err = svc.Update(ctx, 1, exerciseuc.UpdateInput{})
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, svc.Delete(ctx, 1), boom)

	require.Len(t, log.errors, 4)
}

func TestList_NeverNil(t *testing.T) {
	svc := exerciseuc.NewService(nilListRepo{}, logger.Nop())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
}
