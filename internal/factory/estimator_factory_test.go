package factory_test

import (
	"testing"

	"DecaySpectra/internal/config"
	_ "DecaySpectra/internal/estimator"
	"DecaySpectra/internal/factory"
)

func TestCreateEstimators(t *testing.T) {
	defs := []config.EstimatorDef{
		{Type: "forward", Name: "fwd", Lambda: 0.01},
		{Type: "backward", Lambda: 0.01},
		{Type: "sliding", Name: "win", WindowSize: 30},
	}

	estimators, err := factory.Create(defs)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(estimators) != 3 {
		t.Fatalf("expected 3 estimators, got %d", len(estimators))
	}

	// An empty name defaults to the type name.
	names := []string{"fwd", "backward", "win"}
	for i, want := range names {
		if got := estimators[i].Name(); got != want {
			t.Errorf("estimator %d: name %q, want %q", i, got, want)
		}
	}
}

func TestCreateRejectsInvalidDefs(t *testing.T) {
	cases := []struct {
		name string
		defs []config.EstimatorDef
	}{
		{"unknown type", []config.EstimatorDef{{Type: "exotic"}}},
		{"missing lambda", []config.EstimatorDef{{Type: "forward"}}},
		{"missing window", []config.EstimatorDef{{Type: "sliding"}}},
		{"duplicate names", []config.EstimatorDef{
			{Type: "forward", Name: "dup", Lambda: 0.01},
			{Type: "backward", Name: "dup", Lambda: 0.01},
		}},
	}
	for _, tc := range cases {
		if _, err := factory.Create(tc.defs); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
