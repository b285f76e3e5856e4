package service

import (
	"context"
	"sync"
	"time"

	"freight-emissions/internal/features/locations/domain"
)

// DefaultQuietPeriod is the debounce delay applied between a keystroke
// and the search request it triggers.
const DefaultQuietPeriod = 300 * time.Millisecond

// SearchFunc is the lookup a debounced field drives. It never fails;
// lookup errors surface as an empty candidate list.
type SearchFunc func(ctx context.Context, term string, kind domain.LocationKind) []domain.Location

// ResultFunc receives the candidate list for a field once a search lands.
type ResultFunc func(candidates []domain.Location)

// DebouncedField owns the search state of a single endpoint field
// ("from" or "to"). Every keystroke re-arms a quiet-period timer,
// cancelling any pending one, so at most the latest term's search fires.
// A generation counter guards result application: once a newer keystroke
// arrives, results of older searches are discarded even if their request
// was already in flight (last-write-wins on the candidate slot, not on
// the request).
type DebouncedField struct {
	mu sync.Mutex

	search  SearchFunc
	deliver ResultFunc
	quiet   time.Duration

	timer      *time.Timer
	generation uint64

	term       string
	kind       domain.LocationKind
	candidates []domain.Location
	selected   *domain.Location
}

// NewDebouncedField creates a field with the given quiet period.
// A non-positive quiet period falls back to DefaultQuietPeriod.
func NewDebouncedField(search SearchFunc, deliver ResultFunc, quiet time.Duration) *DebouncedField {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &DebouncedField{
		search:  search,
		deliver: deliver,
		quiet:   quiet,
		kind:    domain.KindGeneral,
	}
}

// SetKind switches the candidate pool (general vs airport) for
// subsequent searches. Triggered by transport mode changes.
func (f *DebouncedField) SetKind(kind domain.LocationKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kind = kind
}

// Input registers a keystroke. An empty term clears the candidates
// immediately without a lookup; anything else arms the debounce timer.
func (f *DebouncedField) Input(term string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.term = term
	f.generation++

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}

	if term == "" {
		f.candidates = nil
		f.notify(nil)
		return
	}

	gen := f.generation
	kind := f.kind
	f.timer = time.AfterFunc(f.quiet, func() {
		f.fire(gen, term, kind)
	})
}

// fire runs the search and applies the result if it is still current.
func (f *DebouncedField) fire(gen uint64, term string, kind domain.LocationKind) {
	results := f.search(context.Background(), term, kind)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		// A newer keystroke superseded this search.
		return
	}

	f.candidates = results
	f.notify(results)
}

// Select stores the chosen candidate as the field's location, mirrors its
// address into the display term and clears the candidate list.
func (f *DebouncedField) Select(loc domain.Location) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.selected = &loc
	f.term = loc.Address
	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.candidates = nil
	f.notify(nil)
}

// Selected returns the chosen location, if any.
func (f *DebouncedField) Selected() *domain.Location {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

// Term returns the current display text of the field.
func (f *DebouncedField) Term() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.term
}

// Candidates returns the current candidate list.
func (f *DebouncedField) Candidates() []domain.Location {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.candidates
}

// Reset clears the whole field state, including any pending timer.
func (f *DebouncedField) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.term = ""
	f.candidates = nil
	f.selected = nil
	f.notify(nil)
}

// Cancel invalidates any pending debounce timer without touching state.
func (f *DebouncedField) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// notify must be called with the mutex held.
func (f *DebouncedField) notify(candidates []domain.Location) {
	if f.deliver != nil {
		f.deliver(candidates)
	}
}
