package engine

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kairoslang/lexcore/bottleneck"
	"github.com/kairoslang/lexcore/fsrs"
	"github.com/kairoslang/lexcore/mastery"
	"github.com/kairoslang/lexcore/taskselector"
)

// Config aggregates every tunable §6 names, loadable from YAML for hosts
// that want file-based configuration (gopkg.in/yaml.v3, a direct
// dependency already in this module's go.mod).
type Config struct {
	RequestRetention      float64 `yaml:"request_retention"`
	MaximumIntervalDays   int     `yaml:"maximum_interval_days"`
	BottleneckMinResponses int    `yaml:"bottleneck_min_responses"`
	BottleneckErrorRate   float64 `yaml:"bottleneck_error_rate_threshold"`
	MasteryStreakThreshold int    `yaml:"mastery_streak_threshold"`
	TaskVarietyWindow     int     `yaml:"task_variety_window"`
	QuadratureNodes       int     `yaml:"quadrature_nodes"`
	SessionSize           int     `yaml:"session_size"`
	SessionDueFraction    float64 `yaml:"session_due_fraction"`
}

// DefaultConfig returns the §6 defaults.
func DefaultConfig() Config {
	return Config{
		RequestRetention:       0.9,
		MaximumIntervalDays:    36500,
		BottleneckMinResponses: 20,
		BottleneckErrorRate:    0.3,
		MasteryStreakThreshold: mastery.DefaultStreakThreshold,
		TaskVarietyWindow:      taskselector.DefaultVarietyWindow,
		QuadratureNodes:        21,
		SessionSize:            20,
		SessionDueFraction:     0.7,
	}
}

// LoadConfigYAML reads a Config from a YAML file, layering it over
// DefaultConfig so a host file only needs to name the tunables it
// overrides.
func LoadConfigYAML(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DumpYAML serializes cfg, the inverse of LoadConfigYAML.
func (c Config) DumpYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) fsrsParameters() fsrs.Parameters {
	p := fsrs.DefaultParameters()
	p.RequestRetention = c.RequestRetention
	p.MaxIntervalDays = c.MaximumIntervalDays
	return p
}

func (c Config) bottleneckConfig() bottleneck.Config {
	cfg := bottleneck.DefaultConfig()
	cfg.MinResponses = c.BottleneckMinResponses
	cfg.ErrorRateThreshold = c.BottleneckErrorRate
	return cfg
}
