package config

const defaultReadRetries = 3

type AppConfig struct {
	ReadRetries int `yaml:"read-retries"`
}

// MaxReadRetries is how many failed console reads in a row are tolerated
// before the session gives up.
func (s *AppConfig) MaxReadRetries() int {
	if s.ReadRetries < 0 {
		return 0
	}
	return s.ReadRetries
}
