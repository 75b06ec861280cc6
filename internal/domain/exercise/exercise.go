package exercise

// Exercise представляет доменную модель упражнения.
//
// ID назначается хранилищем и никогда не переиспользуется, Name задаётся
// при создании и после этого не меняется.
type Exercise struct {
	ID   int64  // Уникальный идентификатор, строго возрастает в порядке создания
	Name string // Название упражнения
	Sets int    // Количество подходов
	Reps int    // Количество повторений
}

// Patch описывает частичное обновление упражнения.
// nil-поле означает, что значение не передано и не меняется.
type Patch struct {
	Sets *int
	Reps *int
}

// NewExercise создаёт новое упражнение с нулевыми подходами и повторениями.
// ID выставляет хранилище при сохранении.
func NewExercise(name string) *Exercise {
	return &Exercise{Name: name}
}

// Apply применяет к упражнению только переданные поля.
func (e *Exercise) Apply(p Patch) {
	if p.Sets != nil {
		e.Sets = *p.Sets
	}
	if p.Reps != nil {
		e.Reps = *p.Reps
	}
}

// IsEmpty возвращает true, если патч ничего не меняет.
func (p Patch) IsEmpty() bool {
	return p.Sets == nil && p.Reps == nil
}
