package holiday

import (
	"context"
	"sync"

	"daykeeper/internal/models"
)

// Result is the outcome of building one year's holiday calendar. The map
// is always populated: when the remote feed fails, ByDate holds the local
// fallback set, FallbackUsed is true and Err carries the fetch failure for
// the caller to surface as a warning. A build never fails its caller.
type Result struct {
	Year         int
	ByDate       map[string][]models.Holiday
	FallbackUsed bool
	Err          error
}

// Builder merges the remote feed with the locally computed observances,
// caching one result per displayed year. Build runs on command goroutines,
// so the cache is guarded; overlapping builds serialize, and the second
// one for the same year is served from the cache.
type Builder struct {
	mu      sync.Mutex
	fetcher Fetcher
	cache   map[int]Result
}

// NewBuilder creates a Builder over the given fetcher.
func NewBuilder(fetcher Fetcher) *Builder {
	return &Builder{fetcher: fetcher, cache: make(map[int]Result)}
}

// Build returns the holiday calendar for year, fetching at most once per
// year per Builder.
func (b *Builder) Build(ctx context.Context, year int) Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if res, ok := b.cache[year]; ok {
		return res
	}

	res := Result{Year: year, ByDate: make(map[string][]models.Holiday)}

	remote, err := b.fetcher.FixedHolidays(ctx, year)
	if err != nil {
		res.FallbackUsed = true
		res.Err = err
	} else {
		for _, h := range remote {
			res.ByDate[h.Date] = append(res.ByDate[h.Date], h)
		}
	}

	// Local entries are added only when no entry at that date already has
	// the identical name, so a holiday present in both sources shows once.
	// Two differently named holidays on the same date both stay.
	for _, h := range Local(year) {
		if hasName(res.ByDate[h.Date], h.Name) {
			continue
		}
		res.ByDate[h.Date] = append(res.ByDate[h.Date], h)
	}

	b.cache[year] = res
	return res
}

func hasName(existing []models.Holiday, name string) bool {
	for _, h := range existing {
		if h.Name == name {
			return true
		}
	}
	return false
}
