// Package progress defines the progress-reporting types shared by the
// multiplication strategies and their consumers (CLI, TUI, server). The
// strategies only ever see a callback; the observer types fan updates out
// to whatever surface is listening.
package progress

import "github.com/agbru/karatcalc/internal/logging"

// ProgressUpdate is a single progress report from one multiplier.
type ProgressUpdate struct {
	// MultiplierIndex identifies which multiplier sent the update when
	// several run concurrently.
	MultiplierIndex int
	// Value is the fraction of work completed, from 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives the completed fraction of a single operation.
type ProgressCallback func(value float64)

// ProgressObserver consumes progress updates.
type ProgressObserver interface {
	OnProgress(update ProgressUpdate)
}

// ProgressSubject fans a stream of updates out to registered observers.
// Register all observers before publishing; the subject is not safe for
// concurrent mutation.
type ProgressSubject struct {
	observers []ProgressObserver
}

// NewProgressSubject creates an empty subject.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer to the fan-out list.
func (s *ProgressSubject) Register(o ProgressObserver) {
	s.observers = append(s.observers, o)
}

// Notify delivers update to every registered observer in registration
// order.
func (s *ProgressSubject) Notify(update ProgressUpdate) {
	for _, o := range s.observers {
		o.OnProgress(update)
	}
}

// Callback returns a ProgressCallback bound to one multiplier index,
// suitable for handing to a Multiplier.Product call.
func (s *ProgressSubject) Callback(index int) ProgressCallback {
	return func(value float64) {
		s.Notify(ProgressUpdate{MultiplierIndex: index, Value: value})
	}
}

// ChannelObserver forwards updates to a channel without ever blocking the
// computation: updates are dropped when the channel is full. Progress is
// monotone, so a dropped intermediate value costs nothing.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer writing to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnProgress implements ProgressObserver.
func (o *ChannelObserver) OnProgress(update ProgressUpdate) {
	select {
	case o.ch <- update:
	default:
	}
}

// LoggingObserver writes updates to a structured logger at debug level.
type LoggingObserver struct {
	logger logging.Logger
}

// NewLoggingObserver creates an observer logging through logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnProgress implements ProgressObserver.
func (o *LoggingObserver) OnProgress(update ProgressUpdate) {
	o.logger.Debug("progress",
		logging.Int("multiplier", update.MultiplierIndex),
		logging.Float64("value", update.Value),
	)
}

// NoOpObserver discards all updates.
type NoOpObserver struct{}

// NewNoOpObserver creates an observer that drops everything.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// OnProgress implements ProgressObserver.
func (*NoOpObserver) OnProgress(ProgressUpdate) {}
