package classroom

import "github.com/trezcool/darasa/core"

type Task struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Deadline  string            `json:"deadline"`  // descriptive only
	Responses map[string]string `json:"responses"` // {learnerID: content}
}

func NewTask(id, title, deadline string) *Task {
	return &Task{
		ID:        id,
		Title:     title,
		Deadline:  deadline,
		Responses: make(map[string]string),
	}
}

// ReceiveSubmission records the learner's content, replacing any earlier one.
// Late submissions are accepted like any other.
func (t *Task) ReceiveSubmission(l *Learner, content string, n core.Notifier) {
	if t.Responses == nil {
		t.Responses = make(map[string]string)
	}
	t.Responses[l.ID] = content
	notify(n, core.NotifySubmitted, l.Account, struct {
		Name      string
		TaskTitle string
	}{l.Name, t.Title})
}

func (t *Task) Submission(learnerID string) (string, bool) {
	content, ok := t.Responses[learnerID]
	return content, ok
}
