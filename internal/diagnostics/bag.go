package diagnostics

import "sync"

// Bag collects diagnostics in insertion order. Safe for concurrent
// adds so parallel passes can share one.
type Bag struct {
	mu    sync.Mutex
	items []*Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(d *Diagnostic) {
	if d == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, d)
}

func (b *Bag) Extend(ds []*Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, ds...)
}

// Diagnostics returns a copy of the collected findings, in the order
// they were added.
func (b *Bag) Diagnostics() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Bag) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

func (b *Bag) CountSeverity(sev Severity) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, d := range b.items {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

func (b *Bag) HasErrors() bool {
	return b.CountSeverity(Error) > 0
}

func (b *Bag) HasWarnings() bool {
	return b.CountSeverity(Warning) > 0
}
