package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domain "exercise-api/internal/domain/exercise"
	"exercise-api/internal/handler/response"
	repo "exercise-api/internal/repository/interfaces"
	exerciseuc "exercise-api/internal/usecase/exercise"
)

// fakeService возвращает заданную ошибку и запоминает последний вызов Update.
type fakeService struct {
	err       error
	lastID    int64
	lastInput exerciseuc.UpdateInput
}

func (s *fakeService) List(context.Context) ([]*domain.Exercise, error) {
	return nil, s.err
}

func (s *fakeService) Create(_ context.Context, name string) (*domain.Exercise, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Exercise{ID: 7, Name: name}, nil
}

func (s *fakeService) Update(_ context.Context, id int64, input exerciseuc.UpdateInput) (*domain.Exercise, error) {
	s.lastID, s.lastInput = id, input
	if s.err != nil {
		return nil, s.err
	}
	e := &domain.Exercise{ID: id, Name: "Squat"}
	e.Apply(domain.Patch{Sets: input.Sets, Reps: input.Reps})
	return e, nil
}

func (s *fakeService) Delete(context.Context, int64) error { return s.err }

func newRouter(svc exerciseuc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.GET("/exercises", h.List)
	r.POST("/exercises", h.Create)
	r.PUT("/exercises/:id", h.Update)
	r.DELETE("/exercises/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Error
}

func TestHandler_InternalErrors(t *testing.T) {
	r := newRouter(&fakeService{err: errors.New("disk I/O error")})

	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/exercises", ""},
		{http.MethodPost, "/exercises", `{"name":"Squat"}`},
		{http.MethodPut, "/exercises/1", `{"sets":1}`},
		{http.MethodDelete, "/exercises/1", ""},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			w := serve(r, tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.Equal(t, MsgInternal, errorMessage(t, w))
			require.NotContains(t, w.Body.String(), "disk I/O")
		})
	}
}

func TestHandler_NotFoundFromService(t *testing.T) {
	r := newRouter(&fakeService{err: fmt.Errorf("lookup: %w", repo.ErrNotFound)})

	w := serve(r, http.MethodPut, "/exercises/5", `{}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, MsgNotFound, errorMessage(t, w))

	w = serve(r, http.MethodDelete, "/exercises/5", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_OutOfRange(t *testing.T) {
	r := newRouter(&fakeService{err: repo.ErrValueOutOfRange})

	w := serve(r, http.MethodPut, "/exercises/1", `{"sets":3000000000}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, MsgOutOfRange, errorMessage(t, w))
}

func TestHandler_ServiceValidationError(t *testing.T) {
	r := newRouter(&fakeService{err: exerciseuc.ErrNameRequired})

	w := serve(r, http.MethodPost, "/exercises", `{"name":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, MsgNameRequired, errorMessage(t, w))
}

func TestHandler_UpdatePassesOnlyPresentFields(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(svc)

	w := serve(r, http.MethodPut, "/exercises/42", `{"reps":8}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(42), svc.lastID)
	require.Nil(t, svc.lastInput.Sets)
	require.NotNil(t, svc.lastInput.Reps)
	require.Equal(t, 8, *svc.lastInput.Reps)
	require.JSONEq(t, `{"id":42,"name":"Squat","sets":0,"reps":8}`, w.Body.String())
}

func TestHandler_CreateReturns201(t *testing.T) {
	r := newRouter(&fakeService{})

	w := serve(r, http.MethodPost, "/exercises", `{"name":"Dips"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":7,"name":"Dips","sets":0,"reps":0}`, w.Body.String())
}
