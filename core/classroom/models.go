// Package classroom models learners, trainers, modules, tasks and evaluation results.
package classroom

import (
	"net/mail"

	"github.com/trezcool/darasa/core"
)

// Account types
const (
	TypeAccount = "Account"
	TypeLearner = "Learner"
	TypeTrainer = "Trainer"
)

// Profile is implemented by every account variant.
type Profile interface {
	Identity() Account
	AccountType() string
}

var (
	_ Profile = Account{}
	_ Profile = (*Learner)(nil)
	_ Profile = (*Trainer)(nil)
)

type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a Account) Identity() Account { return a }

func (a Account) AccountType() string { return TypeAccount }

func (a Account) Address() mail.Address {
	return mail.Address{Name: a.Name, Address: a.Email}
}

// SignIn notifies that the account signed in. It changes nothing.
func (a Account) SignIn(n core.Notifier) {
	notify(n, core.NotifySignedIn, a, struct{ Name string }{a.Name})
}

type Learner struct {
	Account
	JoinedModules []string `json:"joined_modules"` // module IDs, in join order
}

func NewLearner(id, name, email string) *Learner {
	return &Learner{
		Account:       Account{ID: id, Name: name, Email: email},
		JoinedModules: make([]string, 0),
	}
}

func (l Learner) AccountType() string { return TypeLearner }

// JoinModule enrolls the learner in m (which must not be nil).
// Joining the same module twice records it twice, on both sides.
func (l *Learner) JoinModule(m *Module) {
	l.JoinedModules = append(l.JoinedModules, m.ID)
	m.RegisterLearner(l.ID)
}

// UploadTask submits content to t on behalf of the learner.
func (l *Learner) UploadTask(t *Task, content string, n core.Notifier) {
	t.ReceiveSubmission(l, content, n)
}

type Trainer struct {
	Account
	ModulesCreated []string `json:"modules_created"` // module IDs, in creation order
}

func NewTrainer(id, name, email string) *Trainer {
	return &Trainer{
		Account:        Account{ID: id, Name: name, Email: email},
		ModulesCreated: make([]string, 0),
	}
}

func (t Trainer) AccountType() string { return TypeTrainer }

// DesignModule is the only way to create a Module: it is owned by the trainer for its whole life.
func (t *Trainer) DesignModule(id, title, info string) *Module {
	m := newModule(id, title, info, t.ID)
	t.ModulesCreated = append(t.ModulesCreated, m.ID)
	return m
}

// EvaluateTask grades the learner's work on task. Neither the submission nor the marks are checked.
func (t *Trainer) EvaluateTask(task *Task, l *Learner, marks float64, n core.Notifier) Result {
	res := Result{TaskID: task.ID, LearnerID: l.ID, Marks: marks}
	notify(n, core.NotifyEvaluated, l.Account, struct {
		Name  string
		Marks float64
	}{l.Name, marks})
	return res
}

func notify(n core.Notifier, kind core.NotificationKind, to Account, data interface{}) {
	if n == nil {
		return
	}
	n.Notify(&core.Notification{
		Kind:         kind,
		Recipient:    to.Address(),
		TemplateData: data,
	})
}
