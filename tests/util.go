package testutil

import (
	"testing"

	"github.com/trezcool/darasa/core/classroom"
	"github.com/trezcool/darasa/services/notify"
	"github.com/trezcool/darasa/storage/database/inmem"
)

// NewService returns a Service over a fresh in-memory registry, recording its notifications.
func NewService(t *testing.T, opts ...classroom.Option) (*classroom.Service, classroom.Repository, *notifysvc.Recorder) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	repo := inmemdb.NewRepository(db)
	rec := notifysvc.NewRecorder()
	return classroom.NewService(repo, rec, nil, opts...), repo, rec
}

func CreateLearner(t *testing.T, svc *classroom.Service, id, name, email string) *classroom.Learner {
	l, err := svc.RegisterLearner(id, name, email)
	if err != nil {
		t.Fatalf("CreateLearner() failed: %v", err)
	}
	return l
}

func CreateTrainer(t *testing.T, svc *classroom.Service, id, name, email string) *classroom.Trainer {
	tr, err := svc.RegisterTrainer(id, name, email)
	if err != nil {
		t.Fatalf("CreateTrainer() failed: %v", err)
	}
	return tr
}

func DesignModule(t *testing.T, svc *classroom.Service, trainerID, id, title, info string) *classroom.Module {
	m, err := svc.DesignModule(trainerID, id, title, info)
	if err != nil {
		t.Fatalf("DesignModule() failed: %v", err)
	}
	return m
}

func CreateTask(t *testing.T, svc *classroom.Service, moduleID, id, title, deadline string) *classroom.Task {
	task, err := svc.CreateTask(moduleID, id, title, deadline)
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	return task
}
