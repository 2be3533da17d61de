package search

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Snapshot is what the worker publishes after a recompute: the state the
// renderer needs, tagged with a generation counter so stale snapshots can
// be recognized and dropped.
type Snapshot struct {
	Generation   uint64
	State        State
	Letters      string
	Pattern      string
	Result       MatchResult
	CompileError string
}

// Worker drives a Controller from its own goroutine so a rendering loop
// never blocks on an engine pass. Events arrive on a channel; rapid
// consecutive events are debounced and applied as one batch, so at most
// one pass is in flight per query-state generation. If more events arrive
// while a pass runs, its snapshot is discarded instead of published —
// superseded, not queued.
type Worker struct {
	ctrl     *Controller
	debounce time.Duration

	events  chan Event
	results chan Snapshot
	done    chan struct{}
}

// NewWorker wraps a controller. debounce is the window in which bursts of
// events collapse into one recompute; zero applies each event as it comes.
func NewWorker(ctrl *Controller, debounce time.Duration) *Worker {
	return &Worker{
		ctrl:     ctrl,
		debounce: debounce,
		events:   make(chan Event, 64),
		results:  make(chan Snapshot, 1),
		done:     make(chan struct{}),
	}
}

// Events is where the host sends input events.
func (w *Worker) Events() chan<- Event { return w.events }

// Results delivers the latest snapshot. The channel holds only the most
// recent one: an unread stale snapshot is replaced, never queued behind.
func (w *Worker) Results() <-chan Snapshot { return w.results }

// Start launches the worker goroutine.
func (w *Worker) Start() {
	go w.loop()
}

// Stop shuts the worker down. Pending events are dropped.
func (w *Worker) Stop() {
	close(w.done)
}

func (w *Worker) loop() {
	var gen uint64
	for {
		var first Event
		select {
		case <-w.done:
			return
		case first = <-w.events:
		}

		batch := []Event{first}
		if w.debounce > 0 {
			timer := time.NewTimer(w.debounce)
		drain:
			for {
				select {
				case ev := <-w.events:
					batch = append(batch, ev)
					if !timer.Stop() {
						<-timer.C
					}
					timer.Reset(w.debounce)
				case <-timer.C:
					break drain
				case <-w.done:
					timer.Stop()
					return
				}
			}
		}

		gen++
		for _, ev := range batch {
			if err := w.ctrl.Apply(context.Background(), ev); err != nil {
				log.Errorf("apply event: %v", err)
			}
		}

		// A newer event is already waiting: this snapshot is stale
		// before anyone saw it. Discard and go again.
		if len(w.events) > 0 {
			continue
		}

		w.publish(Snapshot{
			Generation:   gen,
			State:        w.ctrl.State(),
			Letters:      w.ctrl.Letters().String(),
			Pattern:      w.ctrl.PatternSource(),
			Result:       w.ctrl.Result(),
			CompileError: w.ctrl.CompileError(),
		})
	}
}

// publish is a latest-wins mailbox: if the host hasn't read the previous
// snapshot yet it gets replaced.
func (w *Worker) publish(snap Snapshot) {
	select {
	case w.results <- snap:
	default:
		select {
		case <-w.results:
		default:
		}
		select {
		case w.results <- snap:
		default:
		}
	}
}
