package classroom

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

var (
	marksRangeTag  = "marksrange"
	marksRangeText = "marks must be between 0 and the maximum marks"
)

func init() {
	core.Validate.RegisterStructValidation(evaluationStructValidation, Evaluation{})
	core.RegisterCustomTranslation(core.Validate, core.Translator, marksRangeTag, marksRangeText)
}

// Evaluation holds what strict evaluation checks before a Result is produced.
type Evaluation struct {
	TaskID    string  `json:"task_id" validate:"required"`
	LearnerID string  `json:"learner_id" validate:"required"`
	Marks     float64 `json:"marks"`
	MaxMarks  float64 `json:"-"`
}

func (ev Evaluation) Validate() error {
	if err := core.Validate.Struct(ev); err != nil {
		return core.ValidationErrors(errors.New("invalid evaluation"), err)
	}
	return nil
}

// evaluationStructValidation reports marks outside [0, MaxMarks], NaN included.
func evaluationStructValidation(sl validator.StructLevel) {
	ev, ok := sl.Current().Interface().(Evaluation)
	if !ok {
		return
	}
	if math.IsNaN(ev.Marks) || ev.Marks < 0 || ev.Marks > ev.MaxMarks {
		sl.ReportError(ev.Marks, "marks", "Marks", marksRangeTag, fmt.Sprint(ev.MaxMarks))
	}
}

// checkEvaluation applies strict evaluation: valid marks, enrolled learner, existing submission.
func (svc *Service) checkEvaluation(task *Task, learner *Learner, marks float64) error {
	ev := Evaluation{TaskID: task.ID, LearnerID: learner.ID, Marks: marks, MaxMarks: svc.maxMarks}
	if err := ev.Validate(); err != nil {
		return err
	}

	modules, err := svc.repo.ModulesWithTask(task.ID)
	if err != nil {
		return err
	}
	var enrolled bool
	for _, m := range modules {
		if m.HasLearner(learner.ID) {
			enrolled = true
			break
		}
	}
	if !enrolled {
		return ErrNotEnrolled
	}

	if _, ok := task.Submission(learner.ID); !ok {
		return ErrNoSubmission
	}
	return nil
}
