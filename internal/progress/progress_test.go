package progress

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/agbru/karatcalc/internal/logging"
)

// recordingObserver captures every update it receives.
type recordingObserver struct {
	updates []ProgressUpdate
}

func (r *recordingObserver) OnProgress(u ProgressUpdate) {
	r.updates = append(r.updates, u)
}

// TestProgressSubject_FanOut verifies each update reaches every observer.
func TestProgressSubject_FanOut(t *testing.T) {
	subject := NewProgressSubject()
	a := &recordingObserver{}
	b := &recordingObserver{}
	subject.Register(a)
	subject.Register(b)

	subject.Notify(ProgressUpdate{MultiplierIndex: 1, Value: 0.5})
	subject.Notify(ProgressUpdate{MultiplierIndex: 2, Value: 1.0})

	for name, obs := range map[string]*recordingObserver{"a": a, "b": b} {
		if len(obs.updates) != 2 {
			t.Fatalf("observer %s received %d updates, want 2", name, len(obs.updates))
		}
		if obs.updates[0].MultiplierIndex != 1 || obs.updates[0].Value != 0.5 {
			t.Errorf("observer %s first update = %+v", name, obs.updates[0])
		}
		if obs.updates[1].MultiplierIndex != 2 || obs.updates[1].Value != 1.0 {
			t.Errorf("observer %s second update = %+v", name, obs.updates[1])
		}
	}
}

// TestProgressSubject_Callback verifies the bound callback stamps the
// multiplier index.
func TestProgressSubject_Callback(t *testing.T) {
	subject := NewProgressSubject()
	rec := &recordingObserver{}
	subject.Register(rec)

	cb := subject.Callback(3)
	cb(0.25)
	cb(0.75)

	if len(rec.updates) != 2 {
		t.Fatalf("received %d updates, want 2", len(rec.updates))
	}
	for _, u := range rec.updates {
		if u.MultiplierIndex != 3 {
			t.Errorf("update %+v has wrong multiplier index, want 3", u)
		}
	}
}

// TestChannelObserver_NonBlocking verifies updates are dropped, not
// blocked on, when the channel is full.
func TestChannelObserver_NonBlocking(t *testing.T) {
	ch := make(chan ProgressUpdate, 1)
	obs := NewChannelObserver(ch)

	obs.OnProgress(ProgressUpdate{Value: 0.1})
	obs.OnProgress(ProgressUpdate{Value: 0.2}) // full channel, must not hang

	got := <-ch
	if got.Value != 0.1 {
		t.Errorf("first delivered update = %+v, want Value 0.1", got)
	}
	select {
	case extra := <-ch:
		t.Errorf("unexpected second update %+v, overflow should be dropped", extra)
	default:
	}
}

// TestLoggingObserver verifies updates reach the logger with their fields.
func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStdLoggerAdapter(log.New(&buf, "", 0))
	obs := NewLoggingObserver(logger)

	obs.OnProgress(ProgressUpdate{MultiplierIndex: 2, Value: 0.5})

	out := buf.String()
	for _, want := range []string{"progress", "multiplier", "2", "0.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

// TestNoOpObserver just exercises the discard path.
func TestNoOpObserver(t *testing.T) {
	NewNoOpObserver().OnProgress(ProgressUpdate{MultiplierIndex: 1, Value: 1.0})
}
