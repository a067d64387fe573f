package arabdict

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/irregular.yaml
var irregularYAML []byte

// irregular is one entry of data/irregular.yaml.
type irregular struct {
	Root     VerbRoot       `yaml:"root"`
	Contexts []Stem1Context `yaml:"contexts"`
	// ImperativeDropsR1 gives the short Form I imperative (خُذْ, كُلْ).
	ImperativeDropsR1 bool `yaml:"imperativeDropsR1"`
	// Stem8AssimilatesR1 gives اِتَّخَذَ.
	Stem8AssimilatesR1 bool `yaml:"stem8AssimilatesR1"`
	// Contracted fuses the colloquial imperfect prefix with the hamza
	// (بْيَاخُذْ).
	Contracted bool `yaml:"contracted"`
	// Suppletive gives the colloquial verb its own paradigm (إِجَا).
	Suppletive bool `yaml:"suppletive"`
	DropR2     []struct {
		Stem  int    `yaml:"stem"`
		Tense string `yaml:"tense"`
	} `yaml:"dropR2"`
}

// dropsR2 reports whether the second radical is elided in c. The Form I
// participle keeps it (رَاءٍ).
func (ir *irregular) dropsR2(c *conjugation) bool {
	if c.participle && c.Stem == 1 {
		return false
	}
	for _, d := range ir.DropR2 {
		if d.Stem == c.Stem && (d.Tense == "" || d.Tense == c.Tense.String()) {
			return true
		}
	}
	return false
}

type irregularTable map[VerbRoot]*irregular

func (t irregularTable) lookup(r VerbRoot) (*irregular, bool) {
	ir, ok := t[r]
	return ir, ok
}

// suppletive returns the entries with their own colloquial paradigm in
// root order.
func (t irregularTable) suppletive() []*irregular {
	var out []*irregular
	for _, ir := range t {
		if ir.Suppletive {
			out = append(out, ir)
		}
	}
	slices.SortFunc(out, func(a, b *irregular) int {
		return strings.Compare(a.Root.String(), b.Root.String())
	})
	return out
}

// loadIrregulars decodes the irregular-root table.
func loadIrregulars(data []byte) (irregularTable, error) {
	var entries []*irregular
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode irregular roots: %w", err)
	}
	t := make(irregularTable, len(entries))
	for i, e := range entries {
		if e.Root.IsZero() {
			return nil, fmt.Errorf("irregular root entry %d: missing root", i)
		}
		if e.Contracted && e.Suppletive {
			return nil, fmt.Errorf("irregular root %s: contracted and suppletive are exclusive", e.Root)
		}
		if _, dup := t[e.Root]; dup {
			return nil, fmt.Errorf("irregular root %s listed twice", e.Root)
		}
		for _, d := range e.DropR2 {
			if d.Tense != "" {
				if _, err := ParseTense(d.Tense); err != nil {
					return nil, fmt.Errorf("irregular root %s: %w", e.Root, err)
				}
			}
		}
		t[e.Root] = e
	}
	return t, nil
}

// irregulars returns the embedded table, decoded on first use.
var irregulars = sync.OnceValue(func() irregularTable {
	t, err := loadIrregulars(irregularYAML)
	if err != nil {
		panic(err)
	}
	return t
})
