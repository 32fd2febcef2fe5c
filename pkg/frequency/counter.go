// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package frequency aggregates tokens into word counts and indexes the result for prefix lookups.
package frequency

import (
	"iter"

	"github.com/charmbracelet/log"
)

// Counter builds the word -> count mapping for a single input.
// Once frozen the mapping belongs to the caller and the counter rejects writes.
type Counter struct {
	counts map[string]int
	total  int
	frozen bool
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add records one occurrence of word.
func (c *Counter) Add(word string) {
	if c.frozen {
		panic("frequency: Add called on a frozen Counter")
	}
	c.counts[word]++
	c.total++
}

// AddAll drains words into the counter.
func (c *Counter) AddAll(words iter.Seq[string]) {
	for w := range words {
		c.Add(w)
	}
}

// Count returns the occurrences recorded for word.
func (c *Counter) Count(word string) int {
	return c.counts[word]
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Total returns the number of tokens seen.
func (c *Counter) Total() int {
	return c.total
}

// Freeze hands the mapping to the caller. Further calls to Add panic.
func (c *Counter) Freeze() map[string]int {
	c.frozen = true
	counts := c.counts
	log.Debugf("Counter frozen: distinct=[%d], tokens=[%d]", len(counts), c.total)
	return counts
}

// CountFrequencies maps every distinct token to its number of occurrences.
func CountFrequencies(tokens []string) map[string]int {
	c := NewCounter()
	for _, t := range tokens {
		c.Add(t)
	}
	return c.Freeze()
}

// Sum adds up every count in freqs.
func Sum(freqs map[string]int) int {
	total := 0
	for _, n := range freqs {
		total += n
	}
	return total
}
