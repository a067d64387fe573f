package arabdict

import (
	"fmt"
	"strings"
)

// Dialect identifies a conjugation table set.
type Dialect string

const (
	MSA      Dialect = "msa"
	Lebanese Dialect = "lebanese"
)

// ParseDialect accepts the identifiers of registered dialects, their ISO
// 639-3 codes and their glottocodes, case insensitively.
func ParseDialect(s string) (Dialect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range dialectTables {
		if s == string(t.info.ID) || s == t.info.ISO6393 || s == t.info.Glottocode {
			return t.info.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// Info describes a dialect.
type Info struct {
	ID Dialect `json:"id"`
	// Name is the English display name.
	Name string `json:"name"`
	// ISO6393 is the ISO 639-3 language code.
	ISO6393 string `json:"iso639_3"`
	// Glottocode is the Glottolog identifier.
	Glottocode string `json:"glottocode"`
}

// templateKey selects a stem template.
type templateKey struct {
	quadriliteral bool
	stem          int
	tense         Tense
	voice         Voice
}

// participleRequest carries the arguments of a participle derivation.
type participleRequest struct {
	root  VerbRoot
	class RootClass
	stem  int
	voice Voice
	ctx   *Stem1Context
	irr   *irregular
}

// dialectTable is everything the engine needs to know about one dialect.
// The engine reads these values and calls these strategies; it never
// branches on the dialect identity. A dialect is described either by
// templates, suffixes and a rule chain or by a tree grammar.
type dialectTable struct {
	info Info

	templates map[templateKey]pattern

	perfectSuffixes map[personKey]affix
	presentSuffixes map[Mood]map[personKey]affix

	// prefix attaches the person prefix, proclitics and hamzat al-wasl.
	prefix func(c *conjugation, f form) form
	// rules is the ordered weak-radical rule chain.
	rules []rule

	// grammar replaces the template engine when set.
	grammar *treeGrammar

	// supports reports whether the dialect defines the cell at all.
	supports func(p Parameters, class RootClass) bool
	// participle derives the spellings of a participle. nil when the
	// dialect defines none.
	participle func(r participleRequest) ([]Word, error)
	// proclitics are letters the dialect puts in front of the person
	// prefix.
	proclitics []Letter
}

var dialectTables = []*dialectTable{msaTable, lebaneseTable}

func tableFor(d Dialect) (*dialectTable, error) {
	for _, t := range dialectTables {
		if t.info.ID == d {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, d)
}

// Dialects lists the registered dialects.
func Dialects() []Dialect {
	out := make([]Dialect, len(dialectTables))
	for i, t := range dialectTables {
		out[i] = t.info.ID
	}
	return out
}

// DialectInfo returns the metadata of d.
func DialectInfo(d Dialect) (Info, error) {
	t, err := tableFor(d)
	if err != nil {
		return Info{}, err
	}
	return t.info, nil
}

func (t *dialectTable) template(p Parameters) (pattern, bool) {
	tp, ok := t.templates[templateKey{
		quadriliteral: p.Root.Len() == 4,
		stem:          p.Stem,
		tense:         p.Tense,
		voice:         p.Voice,
	}]
	return tp, ok
}

func (t *dialectTable) suffix(p Parameters) (affix, bool) {
	var m map[personKey]affix
	if p.Tense == Perfect {
		m = t.perfectSuffixes
	} else {
		m = t.presentSuffixes[p.Mood]
	}
	a, ok := m[p.key()]
	return a, ok
}

// prefixLetter returns the imperfect person prefix. The third feminine
// plural takes ي like the masculine.
func prefixLetter(k personKey) Letter {
	switch {
	case k.person == First && k.numerus == Singular:
		return Hamza
	case k.person == First:
		return Nun
	case k.person == Third && (k.gender == Male || k.numerus == Plural):
		return Ya
	}
	return Ta
}

// compileTemplates parses a template table written in pattern notation.
func compileTemplates(src map[templateKey]string) map[templateKey]pattern {
	out := make(map[templateKey]pattern, len(src))
	for k, s := range src {
		out[k] = mustPattern(s)
	}
	return out
}

// allPersons lists every person key in table order.
var allPersons = []personKey{
	{Third, Male, Singular}, {Third, Female, Singular},
	{Second, Male, Singular}, {Second, Female, Singular},
	{First, Male, Singular},
	{Third, Male, Dual}, {Third, Female, Dual}, {Second, Male, Dual},
	{Third, Male, Plural}, {Third, Female, Plural},
	{Second, Male, Plural}, {Second, Female, Plural},
	{First, Male, Plural},
}
