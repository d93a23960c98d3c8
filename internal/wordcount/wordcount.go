// =============================================================================
// Dataset Report Tools - Word Count Module
// =============================================================================

// Package wordcount tallies lower-cased words in first-seen insertion order.
// Case normalization is the only transformation applied; punctuation is kept
// as part of the word.
package wordcount

// Counter maps words to occurrence counts while remembering the order in
// which words were first seen, so reports list words the way the input
// introduced them.
type Counter struct {
	order  []string
	counts map[string]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count for word, inserting it with count 1 on first
// occurrence. Callers pass already lower-cased words.
func (c *Counter) Add(word string) {
	if _, seen := c.counts[word]; !seen {
		c.order = append(c.order, word)
	}
	c.counts[word]++
}

// Len returns the number of distinct words seen.
func (c *Counter) Len() int {
	return len(c.order)
}

// Entry is one word with its total occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Entries returns all words with their counts in first-seen order.
func (c *Counter) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, w := range c.order {
		entries = append(entries, Entry{Word: w, Count: c.counts[w]})
	}
	return entries
}
