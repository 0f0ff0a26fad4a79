package factory

import (
	"fmt"
	"log"

	"DecaySpectra/internal/config"
	"DecaySpectra/internal/model"
)

// EstimatorFactory defines a function that creates an estimator instance
// from its config definition.
type EstimatorFactory func(def config.EstimatorDef) (model.Estimator, error)

// registry holds the mapping of estimator types to their factory functions.
var registry = make(map[string]EstimatorFactory)

// RegisterEstimator registers a new estimator type with its factory function.
func RegisterEstimator(name string, factory EstimatorFactory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("estimator type '%s' already registered", name))
	}
	registry[name] = factory
}

// Create creates one estimator instance per definition in the config.
// Instance names must be unique; an empty name defaults to the type name.
func Create(defs []config.EstimatorDef) ([]model.Estimator, error) {
	seen := make(map[string]struct{}, len(defs))
	estimators := make([]model.Estimator, 0, len(defs))

	for _, def := range defs {
		factory, ok := registry[def.Type]
		if !ok {
			return nil, fmt.Errorf("unknown estimator type: '%s'", def.Type)
		}
		if def.Name == "" {
			def.Name = def.Type
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("duplicate estimator name: '%s'", def.Name)
		}
		seen[def.Name] = struct{}{}

		est, err := factory(def)
		if err != nil {
			return nil, fmt.Errorf("error creating estimator '%s': %w", def.Name, err)
		}
		log.Printf("Created estimator '%s' of type '%s'", def.Name, def.Type)
		estimators = append(estimators, est)
	}

	return estimators, nil
}
