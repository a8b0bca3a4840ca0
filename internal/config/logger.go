package config

const defaultLogEnv = "cli"

type LoggerConfig struct {
	EnvName string `yaml:"env"`
}

func (l *LoggerConfig) Env() string {
	return l.EnvName
}
