package registry

import "github.com/nao1215/verifymodels/internal/model"

// Observer receives batch progress as it happens.
// Calls are made from the goroutine running RunBatch, in order.
type Observer interface {
	// BatchStarted is called before the first request of a batch.
	BatchStarted(registry model.Registry, total int)

	// ResultReady is called once per identifier, right after its lookup.
	// index is 1-based.
	ResultReady(registry model.Registry, index, total int, result model.CheckResult)

	// BatchFinished is called after the last request of a batch.
	BatchFinished(summary *model.RunSummary)
}

// MultiObserver forwards every event to all of its observers in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver creates an Observer that notifies all provided observers.
// Nil observers are skipped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	m := &MultiObserver{observers: make([]Observer, 0, len(observers))}
	for _, o := range observers {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
	return m
}

// BatchStarted notifies every observer.
func (m *MultiObserver) BatchStarted(registry model.Registry, total int) {
	for _, o := range m.observers {
		o.BatchStarted(registry, total)
	}
}

// ResultReady notifies every observer.
func (m *MultiObserver) ResultReady(registry model.Registry, index, total int, result model.CheckResult) {
	for _, o := range m.observers {
		o.ResultReady(registry, index, total, result)
	}
}

// BatchFinished notifies every observer.
func (m *MultiObserver) BatchFinished(summary *model.RunSummary) {
	for _, o := range m.observers {
		o.BatchFinished(summary)
	}
}

// nopObserver discards all events.
type nopObserver struct{}

func (nopObserver) BatchStarted(model.Registry, int)                        {}
func (nopObserver) ResultReady(model.Registry, int, int, model.CheckResult) {}
func (nopObserver) BatchFinished(*model.RunSummary)                         {}
