package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_STRICTEVALUATION", "true")
	t.Setenv("TEST_MAXMARKS", "20")

	conf, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "Darasa", conf.AppName)
	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.Equal(t, "silent", conf.Notifier)
	assert.Equal(t, "std", conf.LogBackend)
	assert.True(t, conf.StrictEvaluation)
	assert.Equal(t, 20.0, conf.MaxMarks)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{AppName: "Darasa", Env: "DEV", LogBackend: "std", Notifier: "console", MaxMarks: 100}
	}

	tests := []struct {
		name       string
		modify     func(conf *Config)
		wantFields []string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "unknown notifier", modify: func(c *Config) { c.Notifier = "email" }, wantFields: []string{"notifier"}},
		{name: "unknown log backend", modify: func(c *Config) { c.LogBackend = "syslog" }, wantFields: []string{"logBackend"}},
		{name: "no max marks", modify: func(c *Config) { c.MaxMarks = 0 }, wantFields: []string{"maxMarks"}},
		{name: "several", modify: func(c *Config) { c.AppName = ""; c.Env = "LOCAL" }, wantFields: []string{"appName", "env"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := valid()
			tt.modify(&conf)
			err := conf.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			verr, ok := err.(*ValidationError)
			require.True(t, ok, "Validate() error = %v, want *ValidationError", err)
			fields := make([]string, 0, len(verr.Fields))
			for _, fld := range verr.Fields {
				fields = append(fields, fld.Field)
				assert.NotEmpty(t, fld.Error)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}
