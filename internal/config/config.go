package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EstimatorDef defines a single estimator instance from the config file.
type EstimatorDef struct {
	// Type selects the registered estimator implementation:
	// "forward", "backward" or "sliding".
	Type string `yaml:"type"`
	Name string `yaml:"name"`
	// Lambda is the decay rate λ for the decay-based estimators.
	Lambda float64 `yaml:"lambda"`
	// WindowSize is the trailing window duration in seconds for the
	// sliding-window estimator.
	WindowSize float64 `yaml:"window_size"`
}

// EvaluationConfig holds the parameters of the evaluation harness.
type EvaluationConfig struct {
	// EvalEvery is the checkpoint cadence in events.
	EvalEvery int `yaml:"eval_every"`
	// TrackItems is the fixed key set over which relative error is averaged.
	TrackItems []string `yaml:"track_items"`
	TopK       int      `yaml:"top_k"`
	// DecayedTruth switches the error reference for decay-scored estimators
	// from the exact count to an exact decayed weight sharing the forward
	// landmark convention.
	DecayedTruth bool `yaml:"decayed_truth"`
}

// JSONWriterConfig holds the settings for the JSON results writer.
type JSONWriterConfig struct {
	Path string `yaml:"path"`
}

// ClickHouseConfig holds the connection settings for ClickHouse.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// WriterDef defines a single result writer from the config file.
type WriterDef struct {
	Type       string           `yaml:"type"`
	Enabled    bool             `yaml:"enabled"`
	JSON       JSONWriterConfig `yaml:"json"`
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
}

// NATSConfig holds the settings for the event transport.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// EngineConfig holds the settings of the stream evaluation engine.
type EngineConfig struct {
	SizeOfEventChannel int `yaml:"size_of_event_channel"`
}

// AlerterRule defines a single threshold rule over checkpoint metrics.
type AlerterRule struct {
	Name      string `yaml:"name"`
	Estimator string `yaml:"estimator"`
	// Metric is "avg_relative_error" or "topk_accuracy".
	Metric    string  `yaml:"metric"`
	Operator  string  `yaml:"operator"`
	Threshold float64 `yaml:"threshold"`
}

// AlerterConfig holds the settings for checkpoint alerting.
type AlerterConfig struct {
	Enabled bool          `yaml:"enabled"`
	Rules   []AlerterRule `yaml:"rules"`
}

// SMTPConfig holds the settings for the email notifier.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// APIConfig holds the settings for the query API servers.
type APIConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	GRPCListenAddr string `yaml:"grpc_listen_addr"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	NATS       NATSConfig       `yaml:"nats"`
	Engine     EngineConfig     `yaml:"engine"`
	Estimators []EstimatorDef   `yaml:"estimators"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Writers    []WriterDef      `yaml:"writers"`
	Alerter    AlerterConfig    `yaml:"alerter"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	API        APIConfig        `yaml:"api"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if cfg.Engine.SizeOfEventChannel <= 0 {
		cfg.Engine.SizeOfEventChannel = 4096
	}
	if cfg.Evaluation.EvalEvery <= 0 {
		cfg.Evaluation.EvalEvery = 5000
	}
	if cfg.Evaluation.TopK <= 0 {
		cfg.Evaluation.TopK = 5
	}

	return &cfg, nil
}
