package exercise

// ExerciseResponse описывает упражнение в ответах API.
type ExerciseResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Squat"`
	Sets int    `json:"sets" example:"0"`
	Reps int    `json:"reps" example:"0"`
}

// CreateRequest описывает тело запроса создания упражнения.
type CreateRequest struct {
	Name string `json:"name" binding:"required" example:"Squat"`
}

// UpdateRequest описывает частичное обновление: отсутствующие поля не меняются.
// Имя после создания не меняется и в запросе игнорируется.
type UpdateRequest struct {
	Sets *int `json:"sets,omitempty" example:"4"`
	Reps *int `json:"reps,omitempty" example:"12"`
}
