package inmemdb

import (
	"sync"

	"github.com/trezcool/darasa/core/classroom"
)

type (
	DB struct {
		account *accountTable
		module  *moduleTable
		task    *taskTable
	}

	accountTable struct {
		mutex    sync.RWMutex
		learners map[string]*classroom.Learner
		trainers map[string]*classroom.Trainer
	}

	moduleTable struct {
		mutex sync.RWMutex
		table map[string]*classroom.Module
	}

	taskTable struct {
		mutex sync.RWMutex
		table map[string]*classroom.Task
	}
)

func Open() (*DB, error) {
	db := &DB{
		account: &accountTable{
			learners: make(map[string]*classroom.Learner),
			trainers: make(map[string]*classroom.Trainer),
		},
		module: &moduleTable{table: make(map[string]*classroom.Module)},
		task:   &taskTable{table: make(map[string]*classroom.Task)},
	}
	return db, nil
}

func (t *accountTable) exists(id string) bool {
	_, isLearner := t.learners[id]
	_, isTrainer := t.trainers[id]
	return isLearner || isTrainer
}
