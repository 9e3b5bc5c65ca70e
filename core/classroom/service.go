package classroom

import (
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrAccountNotFound  = errors.New("account not found")
	ErrModuleNotFound   = errors.New("module not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrAccountExists    = errors.New("an account with this ID already exists")
	ErrModuleExists     = errors.New("a module with this ID already exists")
	ErrTaskExists       = errors.New("a task with this ID already exists")
	ErrWrongAccountType = errors.New("account is not of the expected type")

	// strict evaluation
	ErrNotEnrolled  = errors.New("learner is not enrolled in a module containing this task")
	ErrNoSubmission = errors.New("learner has not submitted this task")
)

type (
	// Repository resolves stable IDs to the entities it owns.
	Repository interface {
		AddLearner(l *Learner) error
		AddTrainer(t *Trainer) error
		GetAccount(id string) (Profile, error)
		GetLearner(id string) (*Learner, error)
		GetTrainer(id string) (*Trainer, error)
		// QueryAccounts returns all accounts ordered by ID.
		QueryAccounts() ([]Profile, error)
		AddModule(m *Module) error
		GetModule(id string) (*Module, error)
		// QueryModules returns all modules ordered by ID.
		QueryModules() ([]*Module, error)
		AddTask(t *Task) error
		GetTask(id string) (*Task, error)
		// ModulesWithTask returns the modules which include the task.
		ModulesWithTask(taskID string) ([]*Module, error)
	}

	Service struct {
		repo     Repository
		notifier core.Notifier
		log      core.Logger

		strict   bool
		maxMarks float64
	}

	Option func(svc *Service)
)

// WithStrictEvaluation makes EvaluateTask reject marks outside [0, maxMarks],
// learners not enrolled in the task's modules and missing submissions.
func WithStrictEvaluation(maxMarks float64) Option {
	return func(svc *Service) {
		svc.strict = true
		svc.maxMarks = maxMarks
	}
}

func NewService(repo Repository, notifier core.Notifier, logger core.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = core.NopLogger()
	}
	svc := &Service{repo: repo, notifier: notifier, log: logger}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (svc *Service) RegisterLearner(id, name, email string) (*Learner, error) {
	l := NewLearner(id, name, email)
	if err := svc.repo.AddLearner(l); err != nil {
		return nil, errors.Wrapf(err, "registering learner %q", id)
	}
	svc.log.Info("learner registered", l.Account)
	return l, nil
}

func (svc *Service) RegisterTrainer(id, name, email string) (*Trainer, error) {
	t := NewTrainer(id, name, email)
	if err := svc.repo.AddTrainer(t); err != nil {
		return nil, errors.Wrapf(err, "registering trainer %q", id)
	}
	svc.log.Info("trainer registered", t.Account)
	return t, nil
}

func (svc *Service) SignIn(accountID string) error {
	p, err := svc.repo.GetAccount(accountID)
	if err != nil {
		return errors.Wrap(err, "signing in")
	}
	acc := p.Identity()
	acc.SignIn(svc.notifier)
	svc.log.Debug("signed in", acc)
	return nil
}

func (svc *Service) AccountType(accountID string) (string, error) {
	p, err := svc.repo.GetAccount(accountID)
	if err != nil {
		return "", err
	}
	return p.AccountType(), nil
}

func (svc *Service) DesignModule(trainerID, id, title, info string) (*Module, error) {
	trainer, err := svc.repo.GetTrainer(trainerID)
	if err != nil {
		return nil, errors.Wrap(err, "designing module")
	}
	if _, err := svc.repo.GetModule(id); err == nil {
		return nil, errors.Wrapf(ErrModuleExists, "designing module %q", id)
	}

	created := len(trainer.ModulesCreated)
	m := trainer.DesignModule(id, title, info)
	if err := svc.repo.AddModule(m); err != nil {
		trainer.ModulesCreated = trainer.ModulesCreated[:created]
		return nil, errors.Wrapf(err, "designing module %q", id)
	}
	svc.log.Info("module designed", map[string]interface{}{"module": m.ID, "title": m.Title}, trainer.Account)
	return m, nil
}

func (svc *Service) JoinModule(learnerID, moduleID string) error {
	learner, err := svc.repo.GetLearner(learnerID)
	if err != nil {
		return errors.Wrap(err, "joining module")
	}
	m, err := svc.repo.GetModule(moduleID)
	if err != nil {
		return errors.Wrap(err, "joining module")
	}

	learner.JoinModule(m)
	svc.log.Info("learner joined module", map[string]interface{}{"module": m.ID}, learner.Account)
	return nil
}

// CreateTask creates a task and includes it in the module.
func (svc *Service) CreateTask(moduleID, id, title, deadline string) (*Task, error) {
	t := NewTask(id, title, deadline)
	if err := svc.IncludeTask(moduleID, t); err != nil {
		return nil, err
	}
	return t, nil
}

// IncludeTask appends t to the module's tasks, registering t first if it is unknown.
// The same task may be included in several modules.
func (svc *Service) IncludeTask(moduleID string, t *Task) error {
	m, err := svc.repo.GetModule(moduleID)
	if err != nil {
		return errors.Wrap(err, "including task")
	}

	existing, err := svc.repo.GetTask(t.ID)
	switch {
	case err == nil && existing != t:
		return errors.Wrapf(ErrTaskExists, "including task %q", t.ID)
	case errors.Is(err, ErrTaskNotFound):
		if err := svc.repo.AddTask(t); err != nil {
			return errors.Wrapf(err, "including task %q", t.ID)
		}
	case err != nil:
		return errors.Wrap(err, "including task")
	}

	m.IncludeTask(t)
	svc.log.Info("task included", map[string]interface{}{"module": m.ID, "task": t.ID})
	return nil
}

func (svc *Service) UploadTask(learnerID, taskID, content string) error {
	learner, err := svc.repo.GetLearner(learnerID)
	if err != nil {
		return errors.Wrap(err, "uploading task")
	}
	t, err := svc.repo.GetTask(taskID)
	if err != nil {
		return errors.Wrap(err, "uploading task")
	}

	learner.UploadTask(t, content, svc.notifier)
	svc.log.Info("task submitted", map[string]interface{}{"task": t.ID}, learner.Account)
	return nil
}

func (svc *Service) EvaluateTask(trainerID, taskID, learnerID string, marks float64) (Result, error) {
	trainer, err := svc.repo.GetTrainer(trainerID)
	if err != nil {
		return Result{}, errors.Wrap(err, "evaluating task")
	}
	t, err := svc.repo.GetTask(taskID)
	if err != nil {
		return Result{}, errors.Wrap(err, "evaluating task")
	}
	learner, err := svc.repo.GetLearner(learnerID)
	if err != nil {
		return Result{}, errors.Wrap(err, "evaluating task")
	}

	if svc.strict {
		if err := svc.checkEvaluation(t, learner, marks); err != nil {
			svc.log.Warn("evaluation rejected", err, trainer.Account)
			return Result{}, errors.Wrapf(err, "evaluating task %q", taskID)
		}
	}

	res := trainer.EvaluateTask(t, learner, marks, svc.notifier)
	svc.log.Info("task evaluated", map[string]interface{}{"task": t.ID, "learner": learner.ID, "marks": marks}, trainer.Account)
	return res, nil
}

func (svc *Service) Submission(taskID, learnerID string) (string, bool, error) {
	t, err := svc.repo.GetTask(taskID)
	if err != nil {
		return "", false, err
	}
	content, ok := t.Submission(learnerID)
	return content, ok, nil
}

func (svc *Service) Modules() ([]*Module, error) {
	return svc.repo.QueryModules()
}

func (svc *Service) Accounts() ([]Profile, error) {
	return svc.repo.QueryAccounts()
}
