package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/classroom"
)

type (
	scenarioAccount struct {
		ID    string `mapstructure:"id" validate:"omitempty,alphanum_"`
		Name  string `mapstructure:"name" validate:"required"`
		Email string `mapstructure:"email"`
	}

	scenarioTask struct {
		ID       string `mapstructure:"id" validate:"required,alphanum_"`
		Title    string `mapstructure:"title" validate:"required"`
		Deadline string `mapstructure:"deadline"`
	}

	scenarioModule struct {
		ID      string         `mapstructure:"id" validate:"required,alphanum_"`
		Title   string         `mapstructure:"title" validate:"required"`
		Info    string         `mapstructure:"info"`
		Trainer string         `mapstructure:"trainer" validate:"required"`
		Tasks   []scenarioTask `mapstructure:"tasks" validate:"dive"`
	}

	scenarioJoin struct {
		Learner string `mapstructure:"learner" validate:"required"`
		Module  string `mapstructure:"module" validate:"required"`
	}

	scenarioSubmission struct {
		Learner string `mapstructure:"learner" validate:"required"`
		Task    string `mapstructure:"task" validate:"required"`
		Content string `mapstructure:"content"`
	}

	scenarioEvaluation struct {
		Trainer string  `mapstructure:"trainer" validate:"required"`
		Task    string  `mapstructure:"task" validate:"required"`
		Learner string  `mapstructure:"learner" validate:"required"`
		Marks   float64 `mapstructure:"marks"`
	}

	// scenario is a classroom session: accounts and modules are set up first, then
	// sign-ins, joins, submissions and evaluations run in that order.
	scenario struct {
		Trainers    []scenarioAccount    `mapstructure:"trainers" validate:"dive"`
		Learners    []scenarioAccount    `mapstructure:"learners" validate:"dive"`
		Modules     []scenarioModule     `mapstructure:"modules" validate:"dive"`
		SignIns     []string             `mapstructure:"signins"`
		Joins       []scenarioJoin       `mapstructure:"joins" validate:"dive"`
		Submissions []scenarioSubmission `mapstructure:"submissions" validate:"dive"`
		Evaluations []scenarioEvaluation `mapstructure:"evaluations" validate:"dive"`
	}
)

func demoScenario() scenario {
	return scenario{
		Trainers: []scenarioAccount{{ID: "t1", Name: "Ada", Email: "ada@x.com"}},
		Learners: []scenarioAccount{{ID: "l1", Name: "Bob", Email: "bob@x.com"}},
		Modules: []scenarioModule{{
			ID: "m1", Title: "Intro", Info: "basics", Trainer: "t1",
			Tasks: []scenarioTask{{ID: "k1", Title: "HW1", Deadline: "2024-01-01"}},
		}},
		SignIns:     []string{"t1", "l1"},
		Joins:       []scenarioJoin{{Learner: "l1", Module: "m1"}},
		Submissions: []scenarioSubmission{{Learner: "l1", Task: "k1", Content: "my answer"}},
		Evaluations: []scenarioEvaluation{{Trainer: "t1", Task: "k1", Learner: "l1", Marks: 85}},
	}
}

// loadScenario reads a scenario file in any format viper understands (yaml, json, toml...).
func loadScenario(path string) (scenario, error) {
	var sc scenario
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return sc, errors.Wrapf(err, "reading scenario %s", path)
	}
	if err := v.Unmarshal(&sc); err != nil {
		return sc, errors.Wrapf(err, "decoding scenario %s", path)
	}
	return sc, sc.validate()
}

func (sc scenario) validate() error {
	if err := core.Validate.Struct(sc); err != nil {
		return core.ValidationErrors(errors.New("invalid scenario"), err)
	}
	return nil
}

func (cli *commandLine) execute(sc scenario, stats bool) error {
	if err := sc.validate(); err != nil {
		return err
	}
	svc, reg, err := cli.newService()
	if err != nil {
		return err
	}

	for _, a := range sc.Trainers {
		if _, err := svc.RegisterTrainer(accountID(a), a.Name, a.Email); err != nil {
			return err
		}
	}
	for _, a := range sc.Learners {
		if _, err := svc.RegisterLearner(accountID(a), a.Name, a.Email); err != nil {
			return err
		}
	}
	for _, m := range sc.Modules {
		if _, err := svc.DesignModule(m.Trainer, m.ID, m.Title, m.Info); err != nil {
			return err
		}
		for _, t := range m.Tasks {
			if _, err := svc.CreateTask(m.ID, t.ID, t.Title, t.Deadline); err != nil {
				return err
			}
		}
	}
	for _, id := range sc.SignIns {
		if err := svc.SignIn(id); err != nil {
			return err
		}
	}
	for _, j := range sc.Joins {
		if err := svc.JoinModule(j.Learner, j.Module); err != nil {
			return err
		}
	}
	for _, s := range sc.Submissions {
		if err := svc.UploadTask(s.Learner, s.Task, s.Content); err != nil {
			return err
		}
	}
	for _, e := range sc.Evaluations {
		res, err := svc.EvaluateTask(e.Trainer, e.Task, e.Learner, e.Marks)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cli.out, "result: task=%s learner=%s marks=%v\n", res.TaskID, res.LearnerID, res.Marks)
	}

	if err := cli.printModules(svc); err != nil {
		return err
	}
	if stats {
		return printStats(cli.out, reg)
	}
	return nil
}

func accountID(a scenarioAccount) string {
	if id := core.CleanString(a.ID); id != "" {
		return id
	}
	return core.NewID()
}

func (cli *commandLine) printModules(svc *classroom.Service) error {
	modules, err := svc.Modules()
	if err != nil {
		return err
	}
	for _, m := range modules {
		_, _ = fmt.Fprintf(cli.out, "module %s %q by %s: learners=%v tasks=%v\n", m.ID, m.Title, m.TrainerID(), m.Learners, m.TaskIDs())
		for _, t := range m.Tasks {
			seen := make(map[string]bool, len(m.Learners))
			for _, l := range m.Learners {
				if seen[l] {
					continue
				}
				seen[l] = true
				if content, ok := t.Submission(l); ok {
					_, _ = fmt.Fprintf(cli.out, "  %s/%s: %q\n", t.ID, l, content)
				}
			}
		}
	}
	return nil
}
