/*
Package dictionary loads the two read-only input files the engine depends
on: the word list and the per-letter score table.

Both loaders are strict: the core only ever sees fully valid data, and a
malformed or missing file is fatal at startup, before any interactive
surface is shown. Words are normalized to lowercase at this boundary so
everything downstream can assume a-z bytes.
*/
package dictionary

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is the immutable, ordered word list. Words live in a
// patricia trie, which collapses duplicates and hands them back in
// lexicographic order; that order is the "dictionary order" the engine's
// single pass iterates in. Nothing mutates a Dictionary after load.
type Dictionary struct {
	trie  *patricia.Trie
	count int
	words []string
}

func newDictionary() *Dictionary {
	return &Dictionary{trie: patricia.NewTrie()}
}

// add inserts one normalized word. Duplicates collapse harmlessly.
func (d *Dictionary) add(word string) {
	if d.trie.Insert(patricia.Prefix(word), struct{}{}) {
		d.count++
	}
}

// freeze walks the trie once and snapshots the ordered word slice the
// engine iterates over.
func (d *Dictionary) freeze() {
	d.words = make([]string, 0, d.count)
	_ = d.trie.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		d.words = append(d.words, string(p))
		return nil
	})
}

// Words returns the full word list in dictionary (lexicographic) order.
// Callers must not modify the returned slice.
func (d *Dictionary) Words() []string { return d.words }

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether the exact word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.Get(patricia.Prefix(word)) != nil
}

// WithPrefix returns all words starting with the given prefix, in order.
// The interactive surfaces use it for quick lookups next to the main
// letter search.
func (d *Dictionary) WithPrefix(prefix string) []string {
	var out []string
	_ = d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	return out
}
