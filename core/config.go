package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	AppName  string `mapstructure:"appName" validate:"required"`
	Env      string `mapstructure:"env" validate:"oneof=DEV TEST QA PROD"`
	Debug    bool   `mapstructure:"debug"`
	TestMode bool   `mapstructure:"testMode"`
	Build    string `mapstructure:"build"`
	Host     string `mapstructure:"host"`

	// logging
	LogBackend   string `mapstructure:"logBackend" validate:"oneof=std zap"`
	LogFile      string `mapstructure:"logFile"`
	RollbarToken string `mapstructure:"rollbarToken"`

	// classroom
	Notifier         string  `mapstructure:"notifier" validate:"oneof=console silent"`
	StrictEvaluation bool    `mapstructure:"strictEvaluation"`
	MaxMarks         float64 `mapstructure:"maxMarks" validate:"gt=0"`
}

// NewConfig reads the configuration from defaults, an optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed by the current ENV, eg. `DEV_NOTIFIER=silent`.
func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Darasa")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("build", "dev")
	v.SetDefault("host", "localhost")
	v.SetDefault("logBackend", "std")
	v.SetDefault("logFile", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("notifier", "console")
	v.SetDefault("strictEvaluation", false)
	v.SetDefault("maxMarks", 100.0)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("notifier", "silent")
	}
	v.SetDefault("env", env)
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "config.Getwd")
	}
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "config.Unmarshal")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (conf *Config) Validate() error {
	if err := Validate.Struct(conf); err != nil {
		return ValidationErrors(errors.New("invalid configuration"), err)
	}
	return nil
}
