package arabdict

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EquivalenceSet holds the orthographic variants of one conjugation cell.
// It is never empty when returned without error.
type EquivalenceSet struct {
	words []Word
}

// newEquivalenceSet deduplicates ws preserving order.
func newEquivalenceSet(ws ...Word) EquivalenceSet {
	var s EquivalenceSet
	for _, w := range ws {
		if !s.Contains(w) {
			s.words = append(s.words, w)
		}
	}
	return s
}

// Words returns the variants in generation order.
func (s EquivalenceSet) Words() []Word {
	return append([]Word(nil), s.words...)
}

// Len returns the number of variants.
func (s EquivalenceSet) Len() int { return len(s.words) }

// Contains reports whether w is one of the variants.
func (s EquivalenceSet) Contains(w Word) bool {
	for _, o := range s.words {
		if o.Equal(w) {
			return true
		}
	}
	return false
}

// Strings renders every variant as Unicode.
func (s EquivalenceSet) Strings() []string {
	out := make([]string, len(s.words))
	for i, w := range s.words {
		out[i] = w.String()
	}
	return out
}

func (s EquivalenceSet) String() string {
	return strings.Join(s.Strings(), " | ")
}

// MarshalJSON encodes the set as an array of Unicode strings.
func (s EquivalenceSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes an array of Unicode strings.
func (s *EquivalenceSet) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	ws := make([]Word, 0, len(raw))
	for _, r := range raw {
		w, err := ParseWord(r)
		if err != nil {
			return err
		}
		ws = append(ws, w)
	}
	*s = newEquivalenceSet(ws...)
	return nil
}

// StemSet is a set of verb stems 1 to 10.
type StemSet uint16

// StemSetOf builds a set from stem numbers. Out of range numbers are
// ignored.
func StemSetOf(stems ...int) StemSet {
	var s StemSet
	for _, st := range stems {
		s = s.Add(st)
	}
	return s
}

// Add returns s with stem added.
func (s StemSet) Add(stem int) StemSet {
	if stem < 1 || stem > 10 {
		return s
	}
	return s | 1<<stem
}

// Has reports whether stem is in s.
func (s StemSet) Has(stem int) bool {
	return stem >= 1 && stem <= 10 && s&(1<<stem) != 0
}

// Stems lists the members in ascending order.
func (s StemSet) Stems() []int {
	var out []int
	for st := 1; st <= 10; st++ {
		if s.Has(st) {
			out = append(out, st)
		}
	}
	return out
}

func (s StemSet) String() string {
	parts := make([]string, 0, 10)
	for _, st := range s.Stems() {
		parts = append(parts, strconv.Itoa(st))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// MarshalJSON encodes the set as an ascending array of stem numbers.
func (s StemSet) MarshalJSON() ([]byte, error) {
	stems := s.Stems()
	if stems == nil {
		stems = []int{}
	}
	return json.Marshal(stems)
}

// UnmarshalJSON decodes an array of stem numbers. Stems outside 1 to 10
// are rejected.
func (s *StemSet) UnmarshalJSON(b []byte) error {
	var stems []int
	if err := json.Unmarshal(b, &stems); err != nil {
		return err
	}
	var out StemSet
	for _, st := range stems {
		if st < 1 || st > 10 {
			return fmt.Errorf("%w: stem %d", ErrUnsupportedParameterCombination, st)
		}
		out = out.Add(st)
	}
	*s = out
	return nil
}

// RootAnalysisResult is one hypothesis returned by the analyzer.
type RootAnalysisResult struct {
	// Root is the reconstructed root.
	Root VerbRoot `json:"root"`
	// Stems lists the stems of Root that can produce the analyzed form.
	Stems StemSet `json:"stems"`
}

// SortedResults flattens an analyzer result into a slice ordered by root.
func SortedResults(m map[VerbRoot]StemSet) []RootAnalysisResult {
	out := make([]RootAnalysisResult, 0, len(m))
	for r, s := range m {
		out = append(out, RootAnalysisResult{Root: r, Stems: s})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Root.String() < out[j].Root.String()
	})
	return out
}

// Cell is one entry of a conjugation table.
type Cell struct {
	// Key names the cell, e.g. "perfect.active.3ms" or
	// "present.passive.jussive.2fp".
	Key   string         `json:"key"`
	Forms EquivalenceSet `json:"forms"`
}

// ConjugationTable holds every cell a dialect defines for a verb.
type ConjugationTable struct {
	Dialect Dialect       `json:"dialect"`
	Root    VerbRoot      `json:"root"`
	Stem    int           `json:"stem"`
	Context *Stem1Context `json:"context,omitempty"`
	Cells   []Cell        `json:"cells"`
}

// Lookup returns the forms of the cell named key.
func (t *ConjugationTable) Lookup(key string) (EquivalenceSet, bool) {
	for _, c := range t.Cells {
		if c.Key == key {
			return c.Forms, true
		}
	}
	return EquivalenceSet{}, false
}
