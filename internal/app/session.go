package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/scorecard/internal/domain/card"
	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/pkg/logger"
	"github.com/okian/scorecard/pkg/metrics"
)

// Session defaults.
const (
	defaultDebounce  = 400 * time.Millisecond
	defaultQueueSize = 64
)

// Subject identifies what a session is rendering: exactly one of ScoreID or
// MapID is non-zero.
type Subject struct {
	ScoreID int64
	MapID   int64
}

// valid reports whether exactly one identifier is set.
func (s Subject) valid() bool {
	return (s.ScoreID != 0) != (s.MapID != 0)
}

// editEvent is one user input: a subject change, an override change, or both.
type editEvent struct {
	subject   *Subject
	overrides *model.OverrideSet
}

// Session owns the single "current displayed card" of one editing session.
// Edits debounce into coalesced recomputes; each recompute carries a
// generation, and a completion whose generation is no longer current is
// discarded before publishing, so a stale result can never overwrite a
// newer one. The mutex keeps the single-writer invariant when the session
// is driven from multiple goroutines.
type Session struct {
	svc      *Service
	debounce time.Duration
	log      logger.Logger

	events chan editEvent
	stopCh chan struct{}
	wg     sync.WaitGroup

	gen atomic.Uint64

	mu      sync.RWMutex
	started bool
	current *card.Layout
	status  string
}

// SessionOption applies a configuration option to the Session.
type SessionOption func(*Session)

// WithDebounce sets the edit-coalescing delay.
func WithDebounce(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithSessionLogger sets a custom logger for the session.
func WithSessionLogger(l logger.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEventQueueSize bounds the pending edit-event queue.
func WithEventQueueSize(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.events = make(chan editEvent, n)
		}
	}
}

// NewSession creates a Session over the given service.
func NewSession(svc *Service, opts ...SessionOption) *Session {
	s := &Session{
		svc:      svc,
		debounce: defaultDebounce,
		events:   make(chan editEvent, defaultQueueSize),
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the recompute loop.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	s.started = true
	s.wg.Add(1)
	go s.loop(ctx)
	return nil
}

// Stop shuts the loop down and waits for it.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
}

// SetSubject queues a subject change. Returns false when the session is not
// running, the subject is invalid, or the queue is full.
func (s *Session) SetSubject(subj Subject) bool {
	if !subj.valid() {
		return false
	}
	return s.push(editEvent{subject: &subj})
}

// Edit queues an override change. The override set is re-read in full on
// the recompute it lands in.
func (s *Session) Edit(ov model.OverrideSet) bool {
	return s.push(editEvent{overrides: &ov})
}

// push is a non-blocking enqueue: a full queue rejects the event rather
// than stalling the caller.
func (s *Session) push(ev editEvent) bool {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return false
	}
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// Current returns the latest published layout, if any.
func (s *Session) Current() (card.Layout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return card.Layout{}, false
	}
	return *s.current, true
}

// Status returns the user-facing status message; empty means healthy.
func (s *Session) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// loop is the single logical writer. Edits stage into loop-local state; a
// debounce timer fires one recompute per burst.
func (s *Session) loop(ctx context.Context) {
	defer s.wg.Done()

	var (
		subject   Subject
		overrides model.OverrideSet
		timer     *time.Timer
		timerC    <-chan time.Time
	)

	for {
		select {
		case ev := <-s.events:
			if ev.subject != nil {
				subject = *ev.subject
			}
			if ev.overrides != nil {
				overrides = *ev.overrides
			}
			if timerC != nil {
				metrics.RecordCoalescedEdit()
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(s.debounce)
				continue
			}
			timer = time.NewTimer(s.debounce)
			timerC = timer.C

		case <-timerC:
			timer, timerC = nil, nil
			if !subject.valid() {
				s.publishStatus(ErrNoSubject.Error())
				continue
			}
			gen := s.gen.Add(1)
			go s.recompute(ctx, gen, subject, overrides)

		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// recompute builds one layout and publishes it unless a newer generation
// has started in the meantime.
func (s *Session) recompute(ctx context.Context, gen uint64, subj Subject, ov model.OverrideSet) {
	start := time.Now()

	var (
		l   card.Layout
		err error
	)
	if subj.ScoreID != 0 {
		l, err = s.svc.ScoreCard(ctx, subj.ScoreID, ov)
	} else {
		l, err = s.svc.MapCard(ctx, subj.MapID, ov)
	}

	if s.gen.Load() != gen {
		metrics.RecordStaleRecompute()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != gen { // re-check under the lock
		metrics.RecordStaleRecompute()
		return
	}
	if err != nil {
		// Fetch failed: keep the previous layout visible, surface a status.
		s.status = err.Error()
		if s.log != nil {
			s.log.Warn(ctx, "recompute fetch failed", logger.Error(err))
		}
		return
	}
	s.current = &l
	s.status = ""
	metrics.RecordRecompute(float64(time.Since(start).Milliseconds()))
}

func (s *Session) publishStatus(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = msg
}
