// Package streameval runs the evaluation harness over a live event stream.
package streameval

import (
	"fmt"
	"log"
	"sync"

	"DecaySpectra/internal/alerter"
	"DecaySpectra/internal/config"
	"DecaySpectra/internal/engine/harness"
	_ "DecaySpectra/internal/estimator" // Registers the estimator implementations
	"DecaySpectra/internal/factory"
	"DecaySpectra/internal/model"
	"DecaySpectra/internal/notification"
	"DecaySpectra/internal/report"
)

// StreamEvaluator connects an event source to the evaluation harness and the
// configured writers. Events are buffered in a channel and consumed by a
// single worker goroutine, which owns the harness and the estimators.
type StreamEvaluator struct {
	harness *harness.Harness
	writers []model.Writer
	alerter *alerter.Alerter

	eventChannel chan *model.Event
	workerWg     sync.WaitGroup
}

// New creates a StreamEvaluator from the configuration.
func New(cfg *config.Config) (*StreamEvaluator, error) {
	estimators, err := factory.Create(cfg.Estimators)
	if err != nil {
		return nil, err
	}

	truthLambda := 0.0
	if cfg.Evaluation.DecayedTruth {
		for _, def := range cfg.Estimators {
			if def.Lambda > 0 {
				truthLambda = def.Lambda
				break
			}
		}
	}

	h, err := harness.New(harness.Options{
		Estimators:   estimators,
		TrackKeys:    cfg.Evaluation.TrackItems,
		TopK:         cfg.Evaluation.TopK,
		EvalEvery:    cfg.Evaluation.EvalEvery,
		DecayedTruth: cfg.Evaluation.DecayedTruth,
		TruthLambda:  truthLambda,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create harness: %w", err)
	}

	writers, err := report.NewWriters(cfg.Writers)
	if err != nil {
		return nil, err
	}

	var alertr *alerter.Alerter
	if cfg.Alerter.Enabled {
		var notifier model.Notifier
		if cfg.SMTP.Host != "" {
			notifier = notification.NewEmailNotifier(cfg.SMTP)
		}
		if notifier != nil {
			alertr, err = alerter.NewAlerter(cfg.Alerter, notifier)
			if err != nil {
				return nil, fmt.Errorf("failed to create alerter: %w", err)
			}
			log.Println("Alerter enabled and initialized.")
		} else {
			log.Println("Alerter is enabled in config, but no notifiers are configured. Alerter will not run.")
		}
	}

	return &StreamEvaluator{
		harness:      h,
		writers:      writers,
		alerter:      alertr,
		eventChannel: make(chan *model.Event, cfg.Engine.SizeOfEventChannel),
	}, nil
}

// Start begins the single evaluation worker. The harness is single-writer, so
// exactly one goroutine consumes the event channel.
func (e *StreamEvaluator) Start() {
	e.workerWg.Add(1)
	go e.worker()
	log.Println("Stream evaluator started.")
}

func (e *StreamEvaluator) worker() {
	defer e.workerWg.Done()
	for ev := range e.eventChannel {
		cp := e.harness.ProcessEvent(ev)
		if cp == nil {
			continue
		}
		e.onCheckpoint(cp)
	}
}

// onCheckpoint persists and evaluates a freshly computed checkpoint.
func (e *StreamEvaluator) onCheckpoint(cp *model.Checkpoint) {
	for _, m := range cp.Metrics {
		log.Printf("checkpoint event=%d estimator=%s avg_rel_err=%.4f topk_acc=%.2f entries=%d latency_ns=%.0f",
			cp.EventCount, m.Name, m.AvgRelativeError, m.TopKAccuracy, m.Entries, m.AvgUpdateLatencyNs)
	}

	for _, w := range e.writers {
		if err := w.WriteCheckpoint(cp); err != nil {
			log.Printf("Error writing checkpoint: %v", err)
		}
	}

	if e.alerter != nil {
		e.alerter.Evaluate(cp)
	}
}

// Stop gracefully shuts down the evaluator: stop accepting events, drain the
// channel, flush the accumulated result series and close the writers.
func (e *StreamEvaluator) Stop() {
	log.Println("Stream evaluator stopping...")
	close(e.eventChannel)

	log.Println("Waiting for worker to finish...")
	e.workerWg.Wait()

	result := e.harness.Result()
	for _, w := range e.writers {
		if err := w.Flush(result); err != nil {
			log.Printf("Error flushing result: %v", err)
		}
		if err := w.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}

	log.Printf("Stream evaluator stopped after %d events and %d checkpoints.", e.harness.EventCount(), result.Len())
}

// InputChannel returns the channel events should be published into.
func (e *StreamEvaluator) InputChannel() chan<- *model.Event {
	return e.eventChannel
}
