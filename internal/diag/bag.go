package diag

import (
	"cmp"
	"slices"

	"mofkit/internal/source"
)

// Bag collects the diagnostics of one file up to a fixed limit. It is not
// safe for concurrent use; each parse owns its bag.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag returns a bag holding at most limit diagnostics, at least one.
func NewBag(limit int) *Bag {
	limit = max(limit, 1)
	return &Bag{items: make([]Diagnostic, 0, min(limit, 64)), max: limit}
}

// Add appends d unless the bag is full and reports whether d was kept.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int { return b.max }
func (b *Bag) Len() int { return len(b.items) }

// Items returns the backing slice. Callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool   { return b.atLeast(SevError) }
func (b *Bag) HasWarnings() bool { return b.atLeast(SevWarning) }

func (b *Bag) atLeast(sev Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= sev })
}

// Merge appends everything in other, raising the limit to fit.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.max = max(b.max, len(b.items)+len(other.items))
	b.items = append(b.items, other.items...)
}

// Sort orders by position, then most severe first, then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup keeps the first diagnostic for each code and primary span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
