package config

const (
	defaultServiceName = "bill-tracker"
	defaultAgentHost   = "localhost:6831"
)

type TracingConfig struct {
	IsEnabled bool   `yaml:"enabled"`
	Service   string `yaml:"service-name"`
	Agent     string `yaml:"agent-host"`
}

func (t *TracingConfig) Enabled() bool {
	return t.IsEnabled
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

func (t *TracingConfig) AgentHostPort() string {
	return t.Agent
}
