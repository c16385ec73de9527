package annotate

import (
	"context"
	"errors"
	"sync"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// State of a lookup tooltip.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "error"
	}
	return "unknown"
}

// Messages shown by a failed tooltip.
const (
	MessageNotAvailable = "Meaning not available in current dictionaries"
	MessageInvalidWord  = "Invalid word provided"
	MessageFetchFailed  = "Failed to fetch meaning"
)

type meaningResolver interface {
	Resolve(ctx context.Context, word string) (*domain.WordMeaning, error)
}

// Tooltip is the per-fragment lookup state. Tooltips are independent of
// each other; any number may be loading at once.
type Tooltip struct {
	word     string
	resolver meaningResolver

	mu      sync.Mutex
	state   State
	visible bool
	meaning *domain.WordMeaning
	message string
	done    chan struct{}
}

// View is a snapshot of a tooltip for rendering.
type View struct {
	Word    string
	Visible bool
	State   State
	Meaning *domain.WordMeaning
	Message string
}

// NewTooltip returns an idle, hidden tooltip for word.
func NewTooltip(word string, resolver meaningResolver) *Tooltip {
	done := make(chan struct{})
	close(done)
	return &Tooltip{word: word, resolver: resolver, done: done}
}

// Open shows the tooltip. A resolution starts only from idle or failed;
// a resolved meaning is reused and a running one is joined. The returned
// channel is closed once no resolution is in flight.
func (t *Tooltip) Open(ctx context.Context) <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.visible = true
	if t.state == StateResolved || t.state == StateLoading {
		return t.done
	}

	t.state = StateLoading
	t.message = ""
	done := make(chan struct{})
	t.done = done

	go t.load(ctx, done)

	return done
}

// Close hides the tooltip. A resolution still in flight completes and its
// result is kept, but the tooltip stays hidden.
func (t *Tooltip) Close() {
	t.mu.Lock()
	t.visible = false
	t.mu.Unlock()
}

// Toggle mirrors a tap: hide when shown, open otherwise.
func (t *Tooltip) Toggle(ctx context.Context) <-chan struct{} {
	t.mu.Lock()
	visible := t.visible
	done := t.done
	t.mu.Unlock()

	if visible {
		t.Close()
		return done
	}
	return t.Open(ctx)
}

// View returns the current state; Message is set only after a failed lookup.
func (t *Tooltip) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return View{
		Word:    t.word,
		Visible: t.visible,
		State:   t.state,
		Meaning: t.meaning,
		Message: t.message,
	}
}

func (t *Tooltip) load(ctx context.Context, done chan struct{}) {
	meaning, err := t.resolver.Resolve(ctx, t.word)

	t.mu.Lock()
	defer t.mu.Unlock()
	defer close(done)

	if err != nil || meaning == nil {
		t.state = StateFailed
		t.message = FailureMessage(err)
		return
	}
	t.state = StateResolved
	t.meaning = meaning
}

// FailureMessage maps a resolver error to the text shown to the reader.
func FailureMessage(err error) string {
	switch {
	case err == nil, errors.Is(err, domain.ErrMeaningNotFound):
		return MessageNotAvailable
	case errors.Is(err, domain.ErrInvalidWord):
		return MessageInvalidWord
	default:
		return MessageFetchFailed
	}
}
