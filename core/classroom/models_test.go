package classroom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/services/notify"
)

func TestAccountType(t *testing.T) {
	tests := []struct {
		name string
		acc  Profile
		want string
	}{
		{name: "account", acc: Account{ID: "a1", Name: "A"}, want: "Account"},
		{name: "learner", acc: NewLearner("l1", "Bob", "bob@x.com"), want: "Learner"},
		{name: "learner without identity", acc: NewLearner("", "", ""), want: "Learner"},
		{name: "learner value", acc: Learner{}, want: "Learner"},
		{name: "trainer", acc: NewTrainer("t1", "Ada", "ada@x.com"), want: "Trainer"},
		{name: "trainer without identity", acc: NewTrainer("", "", ""), want: "Trainer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.acc.AccountType(); got != tt.want {
				t.Errorf("AccountType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccount_SignIn(t *testing.T) {
	rec := notifysvc.NewRecorder()
	l := NewLearner("l1", "Bob", "bob@x.com")
	before := *l

	l.SignIn(rec)

	require.Len(t, rec.Sent(), 1)
	sent := rec.Sent()[0]
	assert.Equal(t, "Bob signed in.", sent.Text)
	assert.Equal(t, "bob@x.com", sent.Recipient.Address)
	assert.Equal(t, before, *l)

	// a nil notifier is silent
	assert.NotPanics(t, func() { l.SignIn(nil) })
}

func TestLearner_JoinModule(t *testing.T) {
	tr := NewTrainer("t1", "Ada", "ada@x.com")
	m1 := tr.DesignModule("m1", "Intro", "basics")
	m2 := tr.DesignModule("m2", "Advanced", "more")
	l := NewLearner("l1", "Bob", "bob@x.com")

	l.JoinModule(m1)
	l.JoinModule(m2)
	l.JoinModule(m1) // duplicates are kept

	assert.Equal(t, []string{"m1", "m2", "m1"}, l.JoinedModules)
	assert.Equal(t, []string{"l1", "l1"}, m1.Learners)
	assert.Equal(t, []string{"l1"}, m2.Learners)
	assert.True(t, m1.HasLearner("l1"))
}

func TestTrainer_DesignModule(t *testing.T) {
	tr := NewTrainer("t1", "Ada", "ada@x.com")

	m := tr.DesignModule("m1", "Intro", "basics")

	require.NotNil(t, m)
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "Intro", m.Title)
	assert.Equal(t, "basics", m.Info)
	assert.Equal(t, tr.ID, m.TrainerID())
	assert.Empty(t, m.Tasks)
	assert.Empty(t, m.Learners)
	assert.Equal(t, []string{"m1"}, tr.ModulesCreated)

	tr.DesignModule("m2", "Next", "")
	assert.Equal(t, []string{"m1", "m2"}, tr.ModulesCreated)
}

func TestModule_IncludeTask(t *testing.T) {
	m := NewTrainer("t1", "Ada", "").DesignModule("m1", "Intro", "basics")
	k1 := NewTask("k1", "HW1", "2024-01-01")
	k2 := NewTask("k2", "HW2", "2024-02-01")

	m.IncludeTask(k1)
	m.IncludeTask(k2)

	assert.Equal(t, []*Task{k1, k2}, m.Tasks)
	assert.Equal(t, []string{"k1", "k2"}, m.TaskIDs())
	assert.True(t, m.HasTask("k2"))
	assert.False(t, m.HasTask("k3"))
}

func TestTask_ReceiveSubmission(t *testing.T) {
	rec := notifysvc.NewRecorder()
	task := NewTask("k1", "HW1", "2000-01-01") // long past: still accepted
	bob := NewLearner("l1", "Bob", "bob@x.com")
	eve := NewLearner("l2", "Eve", "eve@x.com")

	bob.UploadTask(task, "first", rec)
	eve.UploadTask(task, "eve's", rec)
	bob.UploadTask(task, "second", rec)

	content, ok := task.Submission("l1")
	assert.True(t, ok)
	assert.Equal(t, "second", content)
	assert.Len(t, task.Responses, 2)
	assert.Equal(t, "eve's", task.Responses["l2"])
	assert.Equal(t, []string{"Bob submitted HW1", "Eve submitted HW1", "Bob submitted HW1"}, rec.Texts())

	_, ok = task.Submission("l3")
	assert.False(t, ok)
}

func TestTask_ReceiveSubmission_ZeroTask(t *testing.T) {
	task := &Task{ID: "k1", Title: "HW1"}
	task.ReceiveSubmission(NewLearner("l1", "Bob", ""), "answer", nil)
	assert.Equal(t, map[string]string{"l1": "answer"}, task.Responses)
}

func TestTrainer_EvaluateTask(t *testing.T) {
	rec := notifysvc.NewRecorder()
	tr := NewTrainer("t1", "Ada", "ada@x.com")
	task := NewTask("k1", "HW1", "2024-01-01")
	bob := NewLearner("l1", "Bob", "bob@x.com")

	tests := []struct {
		name     string
		marks    float64
		wantText string
	}{
		{name: "regular", marks: 85, wantText: "Bob evaluated with score 85"},
		{name: "fractional", marks: 72.5, wantText: "Bob evaluated with score 72.5"},
		{name: "negative is accepted", marks: -3, wantText: "Bob evaluated with score -3"},
		{name: "above any scale is accepted", marks: 1000, wantText: "Bob evaluated with score 1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.Reset()
			// bob never submitted: evaluation is still accepted
			res := tr.EvaluateTask(task, bob, tt.marks, rec)

			assert.Equal(t, Result{TaskID: "k1", LearnerID: "l1", Marks: tt.marks}, res)
			assert.Equal(t, []string{tt.wantText}, rec.Texts())
		})
	}
}

func TestEndToEnd(t *testing.T) {
	rec := notifysvc.NewRecorder()
	ada := NewTrainer("t1", "Ada", "ada@x.com")
	m := ada.DesignModule("m1", "Intro", "basics")
	bob := NewLearner("l1", "Bob", "bob@x.com")
	bob.JoinModule(m)
	k := NewTask("k1", "HW1", "2024-01-01")
	m.IncludeTask(k)
	bob.UploadTask(k, "my answer", rec)

	res := ada.EvaluateTask(k, bob, 85, rec)

	assert.Equal(t, 85.0, res.Marks)
	content, ok := k.Submission(bob.ID)
	assert.True(t, ok)
	assert.Equal(t, "my answer", content)
	assert.Equal(t, []string{"l1"}, m.Learners)
	assert.Equal(t, []*Task{k}, m.Tasks)
	assert.Equal(t, []string{"Bob submitted HW1", "Bob evaluated with score 85"}, rec.Texts())
}
