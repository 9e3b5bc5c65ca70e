package classroom

// Result is the outcome of a trainer's evaluation. Callers keep it; nothing stores it.
type Result struct {
	TaskID    string  `json:"task_id"`
	LearnerID string  `json:"learner_id"`
	Marks     float64 `json:"marks"`
}
