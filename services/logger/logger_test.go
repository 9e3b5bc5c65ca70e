package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/classroom"
)

var (
	conf = &core.Config{AppName: "Darasa", Env: "TEST", Debug: true, LogBackend: "zap"}
	ada  = classroom.Account{ID: "t1", Name: "Ada", Email: "ada@x.com"}
)

func TestZapLogger(t *testing.T) {
	var out bytes.Buffer
	l := NewZapLogger(&out, conf)

	l.Info("module designed", map[string]interface{}{"module": "m1"}, ada)
	l.Warn("evaluation rejected", errors.New("no submission"))
	assert.NoError(t, Close(l))

	logged := out.String()
	assert.Contains(t, logged, "module designed")
	assert.Contains(t, logged, `"module": "m1"`)
	assert.Contains(t, logged, `"account_id": "t1"`)
	assert.Contains(t, logged, "evaluation rejected")
	assert.Contains(t, logged, `"error": "no submission"`)
}

func TestRollbarLogger(t *testing.T) {
	var out bytes.Buffer
	l := NewRollbarLogger(log.New(&out, "", 0), conf) // no token: rollbar stays disabled

	l.Info("task submitted", ada, map[string]interface{}{"task": "k1"})

	assert.Equal(t, "task submitted\n{ID:t1 Name:Ada Email:ada@x.com}\nmap[task:k1]\n", out.String())
}

func TestRollbarLogger_prepare(t *testing.T) {
	l := RollbarLogger{}
	other := classroom.Account{ID: "l1"}

	args := l.prepare("msg", []interface{}{ada, errors.New("boom"), other})

	// only the first account is used as rollbar person, the others are kept as data
	assert.Len(t, args, 3)
	assert.Equal(t, "msg", args[0])
	assert.Equal(t, other, args[2])
}

func TestNew(t *testing.T) {
	assert.IsType(t, &ZapLogger{}, New("T : ", conf))
	assert.IsType(t, &RollbarLogger{}, New("T : ", &core.Config{LogBackend: "std"}))
}

func TestClose(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, Close(NewZapLogger(&out, conf)))
	assert.NoError(t, Close(NewRollbarLogger(log.New(&out, "", 0), conf)))
	assert.NoError(t, Close(core.NopLogger()))
}
