// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package frequency

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is a read-only patricia trie over a frozen frequency mapping.
type Index struct {
	trie  *patricia.Trie
	words int
}

// NewIndex builds an index from freqs. freqs is not retained.
func NewIndex(freqs map[string]int) *Index {
	trie := patricia.NewTrie()
	for word, count := range freqs {
		trie.Insert(patricia.Prefix(word), count)
	}
	log.Debugf("Index built with %d words", len(freqs))
	return &Index{trie: trie, words: len(freqs)}
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return idx.words
}

// Get returns the count of word and whether it is indexed.
func (idx *Index) Get(word string) (int, bool) {
	item := idx.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	return item.(int), true
}

// Subset returns the counts of all words starting with prefix, prefix itself included.
// An empty prefix returns every word.
func (idx *Index) Subset(prefix string) map[string]int {
	subset := make(map[string]int)
	visit := func(p patricia.Prefix, item patricia.Item) error {
		count, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		subset[string(p)] = count
		return nil
	}

	var err error
	if prefix == "" {
		err = idx.trie.Visit(visit)
	} else {
		err = idx.trie.VisitSubtree(patricia.Prefix(prefix), visit)
	}
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return subset
}
