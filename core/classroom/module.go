package classroom

type Module struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Info     string   `json:"info"`
	Tasks    []*Task  `json:"tasks"`
	Learners []string `json:"learners"` // learner IDs, in enrollment order

	trainerID string
}

func newModule(id, title, info, trainerID string) *Module {
	return &Module{
		ID:        id,
		Title:     title,
		Info:      info,
		Tasks:     make([]*Task, 0),
		Learners:  make([]string, 0),
		trainerID: trainerID,
	}
}

// TrainerID is the ID of the trainer who designed the module.
func (m *Module) TrainerID() string { return m.trainerID }

// RegisterLearner is called by Learner.JoinModule; duplicates are kept.
func (m *Module) RegisterLearner(learnerID string) {
	m.Learners = append(m.Learners, learnerID)
}

func (m *Module) IncludeTask(t *Task) {
	m.Tasks = append(m.Tasks, t)
}

func (m *Module) HasLearner(learnerID string) bool {
	for _, id := range m.Learners {
		if id == learnerID {
			return true
		}
	}
	return false
}

func (m *Module) HasTask(taskID string) bool {
	for _, t := range m.Tasks {
		if t.ID == taskID {
			return true
		}
	}
	return false
}

func (m *Module) TaskIDs() []string {
	ids := make([]string, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
