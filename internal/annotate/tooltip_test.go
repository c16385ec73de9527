package annotate

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

type fakeResolver struct {
	calls atomic.Int32
	gate  chan struct{}

	mu      sync.Mutex
	results map[string]*domain.WordMeaning
	errs    map[string]error
}

func (f *fakeResolver) Resolve(ctx context.Context, word string) (*domain.WordMeaning, error) {
	f.calls.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[word]; err != nil {
		return nil, err
	}
	if m := f.results[word]; m != nil {
		return m, nil
	}
	return nil, domain.ErrMeaningNotFound
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for resolution")
	}
}

func TestTooltip_ResolvesOnceAndCaches(t *testing.T) {
	t.Parallel()

	r := &fakeResolver{results: map[string]*domain.WordMeaning{
		"दिल": {Word: "दिल", Meaning: "heart", Source: domain.SourceManual},
	}}
	tip := NewTooltip("दिल", r)

	if v := tip.View(); v.State != StateIdle || v.Visible {
		t.Fatalf("initial view = %+v", v)
	}

	waitDone(t, tip.Open(context.Background()))
	v := tip.View()
	if v.State != StateResolved || v.Meaning == nil || v.Meaning.Meaning != "heart" {
		t.Fatalf("view after open = %+v", v)
	}

	tip.Close()
	waitDone(t, tip.Open(context.Background()))
	if got := r.calls.Load(); got != 1 {
		t.Errorf("resolver calls = %d, want 1", got)
	}
	if !tip.View().Visible {
		t.Error("tooltip should be visible after reopening")
	}
}

func TestTooltip_FailureAllowsRetry(t *testing.T) {
	t.Parallel()

	r := &fakeResolver{}
	tip := NewTooltip("अनजान", r)

	waitDone(t, tip.Open(context.Background()))
	v := tip.View()
	if v.State != StateFailed {
		t.Fatalf("state = %v, want error", v.State)
	}
	if v.Message != MessageNotAvailable {
		t.Errorf("message = %q, want %q", v.Message, MessageNotAvailable)
	}

	r.mu.Lock()
	r.results = map[string]*domain.WordMeaning{"अनजान": {Word: "अनजान", Meaning: "unknown"}}
	r.mu.Unlock()

	tip.Close()
	waitDone(t, tip.Open(context.Background()))
	if got := tip.View(); got.State != StateResolved || got.Message != "" {
		t.Errorf("view after retry = %+v", got)
	}
	if got := r.calls.Load(); got != 2 {
		t.Errorf("resolver calls = %d, want 2", got)
	}
}

func TestTooltip_FailureMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: domain.ErrMeaningNotFound, want: MessageNotAvailable},
		{err: domain.ErrInvalidWord, want: MessageInvalidWord},
		{err: errors.New("boom"), want: MessageFetchFailed},
	}
	for _, tt := range tests {
		r := &fakeResolver{errs: map[string]error{"x": tt.err}}
		tip := NewTooltip("x", r)
		waitDone(t, tip.Open(context.Background()))
		if got := tip.View().Message; got != tt.want {
			t.Errorf("err %v: message = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestTooltip_CloseBeforeCompletion(t *testing.T) {
	t.Parallel()

	r := &fakeResolver{
		gate:    make(chan struct{}),
		results: map[string]*domain.WordMeaning{"रात": {Word: "रात", Meaning: "night"}},
	}
	tip := NewTooltip("रात", r)

	done := tip.Open(context.Background())
	if v := tip.View(); v.State != StateLoading || !v.Visible {
		t.Fatalf("view while loading = %+v", v)
	}

	// A second open joins the running resolution.
	if again := tip.Open(context.Background()); again != done {
		t.Error("expected the in-flight resolution to be joined")
	}

	tip.Close()
	close(r.gate)
	waitDone(t, done)

	v := tip.View()
	if v.Visible {
		t.Error("tooltip must stay hidden after dismissal")
	}
	if v.State != StateResolved || v.Meaning == nil {
		t.Errorf("result not kept: %+v", v)
	}
	if got := r.calls.Load(); got != 1 {
		t.Errorf("resolver calls = %d, want 1", got)
	}
}

func TestTooltip_IndependentFragments(t *testing.T) {
	t.Parallel()

	slow := &fakeResolver{gate: make(chan struct{})}
	fast := &fakeResolver{results: map[string]*domain.WordMeaning{"दिन": {Word: "दिन", Meaning: "day"}}}

	a := NewTooltip("रात", slow)
	b := NewTooltip("दिन", fast)

	aDone := a.Open(context.Background())
	waitDone(t, b.Open(context.Background()))

	if got := a.View().State; got != StateLoading {
		t.Errorf("slow tooltip state = %v, want loading", got)
	}
	if got := b.View().State; got != StateResolved {
		t.Errorf("fast tooltip state = %v, want resolved", got)
	}

	close(slow.gate)
	waitDone(t, aDone)
}

func TestTooltip_Toggle(t *testing.T) {
	t.Parallel()

	r := &fakeResolver{results: map[string]*domain.WordMeaning{"पल": {Word: "पल", Meaning: "moment"}}}
	tip := NewTooltip("पल", r)

	waitDone(t, tip.Toggle(context.Background()))
	if !tip.View().Visible {
		t.Fatal("first toggle should open")
	}
	tip.Toggle(context.Background())
	if tip.View().Visible {
		t.Fatal("second toggle should close")
	}
	if got := r.calls.Load(); got != 1 {
		t.Errorf("resolver calls = %d, want 1", got)
	}
}
