package alerter

import (
	"strings"
	"testing"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"
)

type fakeNotifier struct {
	subjects []string
	bodies   []string
}

func (f *fakeNotifier) Send(subject, body string) error {
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, body)
	return nil
}

func TestAlerterTriggersOnThreshold(t *testing.T) {
	notifier := &fakeNotifier{}
	a, err := NewAlerter(config.AlerterConfig{
		Rules: []config.AlerterRule{
			{Name: "high error", Estimator: "forward", Metric: "avg_relative_error", Operator: ">", Threshold: 0.1},
		},
	}, notifier)
	if err != nil {
		t.Fatalf("Failed to create alerter: %v", err)
	}

	// Below the threshold: no notification.
	a.Evaluate(&model.Checkpoint{
		EventCount: 5000,
		Metrics:    []model.EstimatorMetrics{{Name: "forward", AvgRelativeError: 0.05}},
	})
	if len(notifier.subjects) != 0 {
		t.Fatalf("no alert expected below the threshold, got %d", len(notifier.subjects))
	}

	// Above the threshold: exactly one consolidated notification.
	a.Evaluate(&model.Checkpoint{
		EventCount: 10000,
		Metrics:    []model.EstimatorMetrics{{Name: "forward", AvgRelativeError: 0.25}},
	})
	if len(notifier.subjects) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.subjects))
	}
	if !strings.Contains(notifier.bodies[0], "high error") {
		t.Errorf("notification body does not name the rule: %q", notifier.bodies[0])
	}
}

func TestAlerterRuleScopedToEstimator(t *testing.T) {
	notifier := &fakeNotifier{}
	a, err := NewAlerter(config.AlerterConfig{
		Rules: []config.AlerterRule{
			{Name: "low accuracy", Estimator: "sliding", Metric: "topk_accuracy", Operator: "<", Threshold: 0.5},
		},
	}, notifier)
	if err != nil {
		t.Fatalf("Failed to create alerter: %v", err)
	}

	// The violating metric belongs to a different estimator.
	a.Evaluate(&model.Checkpoint{
		Metrics: []model.EstimatorMetrics{{Name: "forward", TopKAccuracy: 0.2}},
	})
	if len(notifier.subjects) != 0 {
		t.Errorf("rule scoped to 'sliding' should not fire for 'forward'")
	}

	a.Evaluate(&model.Checkpoint{
		Metrics: []model.EstimatorMetrics{{Name: "sliding", TopKAccuracy: 0.2}},
	})
	if len(notifier.subjects) != 1 {
		t.Errorf("expected the scoped rule to fire, got %d notifications", len(notifier.subjects))
	}
}

func TestAlerterRejectsUnknownRules(t *testing.T) {
	if _, err := NewAlerter(config.AlerterConfig{
		Rules: []config.AlerterRule{{Metric: "nonsense", Operator: ">"}},
	}, nil); err == nil {
		t.Error("expected an error for an unknown metric")
	}

	if _, err := NewAlerter(config.AlerterConfig{
		Rules: []config.AlerterRule{{Metric: "entries", Operator: "!="}},
	}, nil); err == nil {
		t.Error("expected an error for an unknown operator")
	}
}
