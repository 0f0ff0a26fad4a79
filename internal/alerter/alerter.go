// Package alerter evaluates checkpoint metrics against configured threshold
// rules and notifies on violations.
package alerter

import (
	"fmt"
	"log"
	"strings"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"
)

// Alerter evaluates every checkpoint against the configured rules and sends a
// consolidated notification when any rule fires.
type Alerter struct {
	rules    []config.AlerterRule
	notifier model.Notifier
}

// NewAlerter creates a new Alerter instance.
func NewAlerter(cfg config.AlerterConfig, notifier model.Notifier) (*Alerter, error) {
	for _, rule := range cfg.Rules {
		switch rule.Metric {
		case "avg_relative_error", "topk_accuracy", "entries", "avg_update_latency_ns":
		default:
			return nil, fmt.Errorf("unknown alert metric: %s", rule.Metric)
		}
		switch rule.Operator {
		case ">", "<", ">=", "<=":
		default:
			return nil, fmt.Errorf("unknown alert operator: %s", rule.Operator)
		}
	}
	return &Alerter{rules: cfg.Rules, notifier: notifier}, nil
}

// Evaluate checks one checkpoint against every rule and sends a single
// consolidated notification for all violations.
func (a *Alerter) Evaluate(cp *model.Checkpoint) {
	var messages []string
	for _, rule := range a.rules {
		for _, m := range cp.Metrics {
			if rule.Estimator != "" && rule.Estimator != m.Name {
				continue
			}
			value := metricValue(m, rule.Metric)
			if check(rule.Operator, value, rule.Threshold) {
				messages = append(messages, fmt.Sprintf(
					"<p><b>Rule '%s' triggered</b>: estimator '%s' has %s = %g (%s %g) at event %d</p>",
					rule.Name, m.Name, rule.Metric, value, rule.Operator, rule.Threshold, cp.EventCount))
			}
		}
	}

	if len(messages) == 0 {
		return
	}

	log.Printf("Alerter evaluation completed. %d alert(s) triggered.", len(messages))

	if a.notifier == nil {
		return
	}

	body := "<h1>DecaySpectra Alert Summary</h1>" +
		"<p>The following alerts were triggered at the last checkpoint:</p><hr>" +
		strings.Join(messages, "<hr>")
	subject := fmt.Sprintf("DecaySpectra Alert Summary (%d Triggered)", len(messages))

	if err := a.notifier.Send(subject, body); err != nil {
		log.Printf("ERROR: Failed to send consolidated alert notification: %v", err)
	} else {
		log.Printf("INFO: Consolidated alert notification sent successfully.")
	}
}

func metricValue(m model.EstimatorMetrics, metric string) float64 {
	switch metric {
	case "avg_relative_error":
		return m.AvgRelativeError
	case "topk_accuracy":
		return m.TopKAccuracy
	case "entries":
		return float64(m.Entries)
	case "avg_update_latency_ns":
		return m.AvgUpdateLatencyNs
	}
	return 0
}

func check(operator string, value, threshold float64) bool {
	switch operator {
	case ">":
		return value > threshold
	case "<":
		return value < threshold
	case ">=":
		return value >= threshold
	case "<=":
		return value <= threshold
	}
	return false
}
