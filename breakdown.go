package exposure

import (
	"iter"
	"slices"
)

// Breakdown maps categories to weights, remembering the order in which
// categories were first seen. Its zero value is an empty breakdown.
type Breakdown struct {
	categories []string
	weights    map[string]Weight
}

// Entry is one category of a Breakdown.
type Entry struct {
	Category string
	Weight   Weight
}

// set stores w for category, replacing any previous weight.
func (b *Breakdown) set(category string, w Weight) {
	if b.weights == nil {
		b.weights = make(map[string]Weight)
	}
	if _, ok := b.weights[category]; !ok {
		b.categories = append(b.categories, category)
	}
	b.weights[category] = w
}

// remove deletes category, if present.
func (b *Breakdown) remove(category string) {
	if _, ok := b.weights[category]; !ok {
		return
	}
	delete(b.weights, category)
	b.categories = slices.DeleteFunc(b.categories, func(c string) bool { return c == category })
}

// Add accumulates w into category.
func (b *Breakdown) Add(category string, w Weight) {
	prev := b.weights[category]
	b.set(category, prev.Add(w))
}

// AddScaled accumulates every category of o, scaled by factor.
func (b *Breakdown) AddScaled(o *Breakdown, factor Weight) {
	for category, w := range o.All() {
		b.Add(category, w.Mul(factor))
	}
}

// Get returns the weight of category.
func (b *Breakdown) Get(category string) (Weight, bool) {
	w, ok := b.weights[category]
	return w, ok
}

func (b *Breakdown) Len() int      { return len(b.categories) }
func (b *Breakdown) IsEmpty() bool { return len(b.categories) == 0 }

// All iterates over categories in first-seen order.
func (b *Breakdown) All() iter.Seq2[string, Weight] {
	return func(yield func(string, Weight) bool) {
		for _, c := range b.categories {
			if !yield(c, b.weights[c]) {
				return
			}
		}
	}
}

// Categories returns the categories in first-seen order.
func (b *Breakdown) Categories() []string { return slices.Clone(b.categories) }

// Total is the sum of all weights.
func (b *Breakdown) Total() Weight {
	var total Weight
	for _, w := range b.weights {
		total = total.Add(w)
	}
	return total
}

// Clone returns a deep copy of b.
func (b *Breakdown) Clone() *Breakdown {
	c := &Breakdown{}
	for category, w := range b.All() {
		c.set(category, w)
	}
	return c
}

// Equal reports whether b and o hold the same categories with equal weights,
// regardless of the order.
func (b *Breakdown) Equal(o *Breakdown) bool {
	if b.Len() != o.Len() {
		return false
	}
	for category, w := range b.All() {
		v, ok := o.Get(category)
		if !ok || !w.Equal(v) {
			return false
		}
	}
	return true
}

// Entries returns the categories in first-seen order.
func (b *Breakdown) Entries() []Entry {
	entries := make([]Entry, 0, b.Len())
	for category, w := range b.All() {
		entries = append(entries, Entry{Category: category, Weight: w})
	}
	return entries
}

// Sorted returns the categories by descending weight. Equal weights keep
// their first-seen order.
func (b *Breakdown) Sorted() []Entry {
	entries := b.Entries()
	slices.SortStableFunc(entries, func(x, y Entry) int {
		return y.Weight.Compare(x.Weight)
	})
	return entries
}

// MarshalJSON writes the breakdown as a JSON object whose keys keep the
// first-seen order.
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for category, weight := range b.All() {
		w.Append(category, weight)
	}
	return w.MarshalJSON()
}
