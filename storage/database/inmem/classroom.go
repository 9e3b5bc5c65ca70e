package inmemdb

import (
	"sort"

	"github.com/trezcool/darasa/core/classroom"
)

type repository struct {
	db *DB
}

func NewRepository(db *DB) classroom.Repository {
	return &repository{db: db}
}

func (repo *repository) AddLearner(l *classroom.Learner) error {
	tbl := repo.db.account
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	if tbl.exists(l.ID) {
		return classroom.ErrAccountExists
	}
	tbl.learners[l.ID] = l
	return nil
}

func (repo *repository) AddTrainer(t *classroom.Trainer) error {
	tbl := repo.db.account
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	if tbl.exists(t.ID) {
		return classroom.ErrAccountExists
	}
	tbl.trainers[t.ID] = t
	return nil
}

func (repo *repository) GetAccount(id string) (classroom.Profile, error) {
	tbl := repo.db.account
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	if l, ok := tbl.learners[id]; ok {
		return l, nil
	}
	if t, ok := tbl.trainers[id]; ok {
		return t, nil
	}
	return nil, classroom.ErrAccountNotFound
}

func (repo *repository) GetLearner(id string) (*classroom.Learner, error) {
	tbl := repo.db.account
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	if l, ok := tbl.learners[id]; ok {
		return l, nil
	}
	if _, ok := tbl.trainers[id]; ok {
		return nil, classroom.ErrWrongAccountType
	}
	return nil, classroom.ErrAccountNotFound
}

func (repo *repository) GetTrainer(id string) (*classroom.Trainer, error) {
	tbl := repo.db.account
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	if t, ok := tbl.trainers[id]; ok {
		return t, nil
	}
	if _, ok := tbl.learners[id]; ok {
		return nil, classroom.ErrWrongAccountType
	}
	return nil, classroom.ErrAccountNotFound
}

func (repo *repository) QueryAccounts() ([]classroom.Profile, error) {
	tbl := repo.db.account
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	accounts := make([]classroom.Profile, 0, len(tbl.learners)+len(tbl.trainers))
	for _, l := range tbl.learners {
		accounts = append(accounts, l)
	}
	for _, t := range tbl.trainers {
		accounts = append(accounts, t)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Identity().ID < accounts[j].Identity().ID })
	return accounts, nil
}

func (repo *repository) AddModule(m *classroom.Module) error {
	tbl := repo.db.module
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	if _, ok := tbl.table[m.ID]; ok {
		return classroom.ErrModuleExists
	}
	tbl.table[m.ID] = m
	return nil
}

func (repo *repository) GetModule(id string) (*classroom.Module, error) {
	tbl := repo.db.module
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	if m, ok := tbl.table[id]; ok {
		return m, nil
	}
	return nil, classroom.ErrModuleNotFound
}

func (repo *repository) query() []*classroom.Module {
	modules := make([]*classroom.Module, 0, len(repo.db.module.table))
	for _, m := range repo.db.module.table {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].ID < modules[j].ID })
	return modules
}

func (repo *repository) QueryModules() ([]*classroom.Module, error) {
	repo.db.module.mutex.RLock()
	defer repo.db.module.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *repository) AddTask(t *classroom.Task) error {
	tbl := repo.db.task
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	if _, ok := tbl.table[t.ID]; ok {
		return classroom.ErrTaskExists
	}
	tbl.table[t.ID] = t
	return nil
}

func (repo *repository) GetTask(id string) (*classroom.Task, error) {
	tbl := repo.db.task
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	if t, ok := tbl.table[id]; ok {
		return t, nil
	}
	return nil, classroom.ErrTaskNotFound
}

func (repo *repository) ModulesWithTask(taskID string) ([]*classroom.Module, error) {
	repo.db.module.mutex.RLock()
	defer repo.db.module.mutex.RUnlock()

	modules := make([]*classroom.Module, 0)
	for _, m := range repo.query() {
		if m.HasTask(taskID) {
			modules = append(modules, m)
		}
	}
	return modules, nil
}
