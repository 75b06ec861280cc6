package exercise

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domain "exercise-api/internal/domain/exercise"
	"exercise-api/internal/handler/middleware"
	"exercise-api/internal/handler/response"
	repo "exercise-api/internal/repository/interfaces"
	exerciseuc "exercise-api/internal/usecase/exercise"
)

// Тексты ответов API.
const (
	MsgNameRequired = "Название упражнения обязательно"
	MsgNotFound     = "Упражнение не найдено"
	MsgDeleted      = "Упражнение успешно удалено"
	MsgInvalidBody  = "Некорректное тело запроса"
	MsgOutOfRange   = "Значение вне допустимого диапазона"
	MsgInternal     = "Внутренняя ошибка сервера"
)

// Handler обрабатывает HTTP-запросы к коллекции упражнений.
type Handler struct {
	exercises exerciseuc.Service
}

// NewHandler создаёт новый ExerciseHandler.
func NewHandler(exercises exerciseuc.Service) *Handler {
	return &Handler{exercises: exercises}
}

// List возвращает все упражнения.
//
//	@Summary	Список упражнений
//	@Tags		exercises
//	@Produce	json
//	@Success	200	{array}	ExerciseResponse
//	@Router		/exercises [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.exercises.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "List", err)
		return
	}

	out := make([]ExerciseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

// Create создаёт упражнение с нулевыми подходами и повторениями.
//
//	@Summary	Создать упражнение
//	@Tags		exercises
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateRequest	true	"Название упражнения"
//	@Success	201		{object}	ExerciseResponse
//	@Failure	400		{object}	response.ErrorBody
//	@Router		/exercises [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.Is(err, io.EOF) || errors.As(err, &fieldErrs) {
			response.Error(c, http.StatusBadRequest, MsgNameRequired)
			return
		}
		response.Error(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	e, err := h.exercises.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, exerciseuc.ErrNameRequired) {
			response.Error(c, http.StatusBadRequest, MsgNameRequired)
			return
		}
		h.internalError(c, "Create", err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(e))
}

// Update частично обновляет подходы и повторения.
//
//	@Summary	Обновить упражнение
//	@Tags		exercises
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID упражнения"
//	@Param		body	body		UpdateRequest	false	"Изменяемые поля"
//	@Success	200		{object}	ExerciseResponse
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/exercises/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, MsgNotFound)
		return
	}

	var req UpdateRequest
	// Пустое тело означает пустой патч.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	e, err := h.exercises.Update(c.Request.Context(), id, exerciseuc.UpdateInput{
		Sets: req.Sets,
		Reps: req.Reps,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			response.Error(c, http.StatusNotFound, MsgNotFound)
		case errors.Is(err, repo.ErrValueOutOfRange):
			response.Error(c, http.StatusBadRequest, MsgOutOfRange)
		default:
			h.internalError(c, "Update", err)
		}
		return
	}

	c.JSON(http.StatusOK, toResponse(e))
}

// Delete удаляет упражнение.
//
//	@Summary	Удалить упражнение
//	@Tags		exercises
//	@Produce	json
//	@Param		id	path		int	true	"ID упражнения"
//	@Success	200	{object}	response.MessageBody
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/exercises/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, MsgNotFound)
		return
	}

	if err := h.exercises.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, MsgNotFound)
			return
		}
		h.internalError(c, "Delete", err)
		return
	}

	response.Message(c, http.StatusOK, MsgDeleted)
}

func (h *Handler) internalError(c *gin.Context, op string, err error) {
	log.Printf("internal error in %s: request_id=%s err=%v", op, c.GetString(middleware.ContextRequestIDKey), err)
	_ = c.Error(err)
	response.Error(c, http.StatusInternalServerError, MsgInternal)
}

// parseID разбирает {id} из пути. Нечисловой ID считается неизвестным.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// toResponse маппит доменную модель в DTO.
func toResponse(e *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:   e.ID,
		Name: e.Name,
		Sets: e.Sets,
		Reps: e.Reps,
	}
}
