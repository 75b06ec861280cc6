// Package repotest содержит общий набор проверок контракта ExerciseRepository,
// который прогоняется для каждой реализации хранилища.
package repotest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	domain "exercise-api/internal/domain/exercise"
	repo "exercise-api/internal/repository/interfaces"
)

// Factory создаёт новое пустое хранилище для одного теста.
type Factory func(t *testing.T) repo.ExerciseRepository

func intPtr(v int) *int { return &v }

// RunExerciseRepositoryContract прогоняет контрактные тесты для реализации.
func RunExerciseRepositoryContract(t *testing.T, newRepo Factory) {
	t.Run("EmptyListIsNotNil", func(t *testing.T) {
		r := newRepo(t)
		list, err := r.List(context.Background())
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("CreateAssignsIncreasingIDs", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		squat := domain.NewExercise("Squat")
		require.NoError(t, r.Create(ctx, squat))
		require.Equal(t, int64(1), squat.ID)

		bench := domain.NewExercise("Bench")
		require.NoError(t, r.Create(ctx, bench))
		require.Equal(t, int64(2), bench.ID)

		list, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, domain.Exercise{ID: 1, Name: "Squat"}, *list[0])
		require.Equal(t, domain.Exercise{ID: 2, Name: "Bench"}, *list[1])
	})

	t.Run("IDsAreNeverReused", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		first := domain.NewExercise("Squat")
		require.NoError(t, r.Create(ctx, first))
		require.NoError(t, r.Delete(ctx, first.ID))

		second := domain.NewExercise("Squat")
		require.NoError(t, r.Create(ctx, second))
		require.Equal(t, int64(2), second.ID)
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		e := domain.NewExercise("Deadlift")
		require.NoError(t, r.Create(ctx, e))

		updated, err := r.Update(ctx, e.ID, domain.Patch{Sets: intPtr(4)})
		require.NoError(t, err)
		require.Equal(t, domain.Exercise{ID: e.ID, Name: "Deadlift", Sets: 4, Reps: 0}, *updated)

		updated, err = r.Update(ctx, e.ID, domain.Patch{Reps: intPtr(12)})
		require.NoError(t, err)
		require.Equal(t, domain.Exercise{ID: e.ID, Name: "Deadlift", Sets: 4, Reps: 12}, *updated)

		// Пустой патч возвращает запись без изменений.
		updated, err = r.Update(ctx, e.ID, domain.Patch{})
		require.NoError(t, err)
		require.Equal(t, 4, updated.Sets)
		require.Equal(t, 12, updated.Reps)

		// Знак значений не проверяется.
		updated, err = r.Update(ctx, e.ID, domain.Patch{Sets: intPtr(-1)})
		require.NoError(t, err)
		require.Equal(t, -1, updated.Sets)

		list, err := r.List(ctx)
		require.NoError(t, err)
		require.Equal(t, -1, list[0].Sets)
	})

	t.Run("UpdateUnknownID", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, domain.NewExercise("Squat")))

		_, err := r.Update(ctx, 999, domain.Patch{Sets: intPtr(1)})
		require.ErrorIs(t, err, repo.ErrNotFound)

		list, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, 0, list[0].Sets)
	})

	t.Run("DeleteRemovesExactlyOne", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"A", "B", "C"} {
			require.NoError(t, r.Create(ctx, domain.NewExercise(name)))
		}

		require.NoError(t, r.Delete(ctx, 2))
		require.ErrorIs(t, r.Delete(ctx, 2), repo.ErrNotFound)

		list, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, int64(1), list[0].ID)
		require.Equal(t, int64(3), list[1].ID)
	})

	t.Run("ReturnsCopies", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		e := domain.NewExercise("Row")
		require.NoError(t, r.Create(ctx, e))
		e.Name = "changed"

		list, err := r.List(ctx)
		require.NoError(t, err)
		list[0].Sets = 100

		again, err := r.List(ctx)
		require.NoError(t, err)
		require.Equal(t, "Row", again[0].Name)
		require.Equal(t, 0, again[0].Sets)
	})

	t.Run("ConcurrentCreates", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		const n = 20
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- r.Create(ctx, domain.NewExercise("Lunge"))
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		list, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, n)
		for i, e := range list {
			require.Equal(t, int64(i+1), e.ID)
		}
	})
}
