package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile = "data/config.yaml"
	logEnvKey  = "LOG_ENV"
)

type config struct {
	App     AppConfig     `yaml:"app"`
	Logger  LoggerConfig  `yaml:"logger"`
	Tracing TracingConfig `yaml:"tracing"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	return NewFromFile(configFile)
}

// NewFromFile reads the yaml config at path. A missing file is not an
// error: the defaults are used instead.
func NewFromFile(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "reading config file")
	}

	if err == nil {
		err = yaml.Unmarshal(rawYAML, &s.config)
		if err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	if env := os.Getenv(logEnvKey); env != "" {
		s.config.Logger.EnvName = env
	}

	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			ReadRetries: defaultReadRetries,
		},
		Logger: LoggerConfig{
			EnvName: defaultLogEnv,
		},
		Tracing: TracingConfig{
			Service: defaultServiceName,
			Agent:   defaultAgentHost,
		},
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Logger() *LoggerConfig {
	return &s.config.Logger
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
