package augment

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/nyaya-ai/nyaya/internal/cache"
)

type fakeFetcher struct {
	texts map[string]string
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, src Source) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.texts[src.Key], nil
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func newTestAugmenter(f Fetcher) *Augmenter {
	return New(cache.NewMemory(time.Hour), f, nil, quietLogger())
}

func TestGateDoesNotFire(t *testing.T) {
	f := &fakeFetcher{texts: map[string]string{"doj_news": "something"}}
	a := newTestAugmenter(f)

	got := a.MaybeAugment(context.Background(), "what is tele-law?")
	if !got.Empty() {
		t.Errorf("expected empty content without recency keywords, got %+v", got)
	}
	if f.calls != 0 {
		t.Errorf("gate off must cost nothing, fetcher called %d times", f.calls)
	}
}

func TestGateFiresAndCollectsSources(t *testing.T) {
	f := &fakeFetcher{texts: map[string]string{
		"doj_news":     "Latest from DoJ:\n- New fast track courts announced",
		"ecourts_info": "eCourts Services:\n- Case status lookup",
	}}
	a := newTestAugmenter(f)

	got := a.MaybeAugment(context.Background(), "Tell me the latest news on eCourts")
	if got.Text == "" {
		t.Fatal("expected augmented text")
	}
	want := []string{"https://doj.gov.in", "https://ecourts.gov.in"}
	if len(got.Sources) != 2 || got.Sources[0] != want[0] || got.Sources[1] != want[1] {
		t.Errorf("sources = %v, want %v", got.Sources, want)
	}
}

func TestFetchFailureDegradesPerSource(t *testing.T) {
	f := &fakeFetcher{err: errors.New("connection refused")}
	a := newTestAugmenter(f)

	got := a.MaybeAugment(context.Background(), "latest case updates")
	if !got.Empty() {
		t.Errorf("failed fetches must contribute nothing, got %+v", got)
	}
}

func TestCacheAvoidsSecondFetch(t *testing.T) {
	f := &fakeFetcher{texts: map[string]string{"doj_news": "Latest from DoJ:\n- Notification"}}
	a := newTestAugmenter(f).WithSources(DefaultSources()[:1])
	ctx := context.Background()

	first := a.MaybeAugment(ctx, "any news today?")
	second := a.MaybeAugment(ctx, "any news today?")
	if first.Text != second.Text {
		t.Errorf("cached content differs: %q vs %q", first.Text, second.Text)
	}
	if f.calls != 1 {
		t.Errorf("fetcher called %d times, want 1 (second call served from cache)", f.calls)
	}
}

func TestOnlyTriggeredSourcesFetched(t *testing.T) {
	f := &fakeFetcher{texts: map[string]string{
		"doj_news":     "doj text",
		"ecourts_info": "ecourts text",
	}}
	a := newTestAugmenter(f)

	// "recent" opens the gate but matches no per-source trigger keyword
	got := a.MaybeAugment(context.Background(), "recent tele-law changes")
	if len(got.Sources) != 0 {
		t.Errorf("no source triggered, got sources %v", got.Sources)
	}
}
