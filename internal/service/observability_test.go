package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// RecordingObserver keeps every event in memory.
type RecordingObserver struct {
	Events []UseCaseEvent
}

func (r *RecordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.Events = append(r.Events, event)
}

// Failures returns the events that carried an error.
func (r *RecordingObserver) Failures() []UseCaseEvent {
	var out []UseCaseEvent
	for _, e := range r.Events {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

func TestLogUseCaseObserver_WritesFailuresAtDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, "")

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "toggle-task", Success: true, Duration: time.Millisecond})
	assert.Empty(t, buf.String(), "info events are hidden at warn level")

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:   "toggle-task",
		Err:    errors.New("disk full"),
		Fields: map[string]any{"id": "p1-c-lang-task-0"},
	})
	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "toggle-task")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "p1-c-lang-task-0")
}

func TestLogUseCaseObserver_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, "info")

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "set-theme", Success: true})
	assert.Contains(t, buf.String(), "set-theme")
}

func TestLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, "debug"))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	rec := &RecordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
