package arabdict

import "fmt"

// masdarShape picks the verbal noun pattern of a derived stem.
type masdarShape uint8

const (
	masdarSound masdarShape = iota
	masdarHollow
	masdarDefective
)

type masdarKey struct {
	quadriliteral bool
	stem          int
	shape         masdarShape
}

// masdarTemplates lists the verbal noun patterns of the derived stems. A
// missing hollow or defective entry falls back to the sound pattern.
var masdarTemplates = map[masdarKey][]string{
	{false, 2, masdarSound}:     {"تa 1o 2i ي 3"},
	{false, 2, masdarDefective}: {"تa 1o 2i يa ة"},

	{false, 3, masdarSound}:     {"مu 1a ا 2a 3a ة", "1i 2a ا 3"},
	{false, 3, masdarHollow}:    {"مu 1a ا 2a 3a ة"},
	{false, 3, masdarDefective}: {"مu 1a ا 2a ا ة"},

	{false, 4, masdarSound}:     {"ءi 1o 2a ا 3"},
	{false, 4, masdarHollow}:    {"ءi 1a ا 3a ة"},
	{false, 4, masdarDefective}: {"ءi 1o 2a ا ء"},

	{false, 5, masdarSound}:     {"تa 1a 2~u 3"},
	{false, 5, masdarDefective}: {"تa 1a 2~I"},

	{false, 6, masdarSound}:     {"تa 1a ا 2u 3"},
	{false, 6, masdarDefective}: {"تa 1a ا 2I"},

	{false, 7, masdarSound}:     {"اi نo 1i 2a ا 3"},
	{false, 7, masdarHollow}:    {"اi نo 1i يa ا 3"},
	{false, 7, masdarDefective}: {"اi نo 1i 2a ا ء"},

	{false, 8, masdarSound}:     {"اi 1o تi 2a ا 3"},
	{false, 8, masdarHollow}:    {"اi 1o تi يa ا 3"},
	{false, 8, masdarDefective}: {"اi 1o تi 2a ا ء"},

	{false, 9, masdarSound}: {"اi 1o 2i 3a ا 3"},

	{false, 10, masdarSound}:     {"اi سo تi 1o 2a ا 3"},
	{false, 10, masdarHollow}:    {"اi سo تi 1a ا 3a ة"},
	{false, 10, masdarDefective}: {"اi سo تi 1o 2a ا ء"},

	{true, 1, masdarSound}: {"1a 2o 3a 4a ة"},
	{true, 2, masdarSound}: {"تa 1a 2o 3u 4"},
	{true, 4, masdarSound}: {"اi 1o 2i 3o 4a ا 4"},
}

var masdarPatterns = func() map[masdarKey][]pattern {
	out := make(map[masdarKey][]pattern, len(masdarTemplates))
	for k, srcs := range masdarTemplates {
		ps := make([]pattern, len(srcs))
		for i, s := range srcs {
			ps[i] = mustPattern(s)
		}
		out[k] = ps
	}
	return out
}()

// masdarRules only touch the stem 8 infix and adjacent identical radicals;
// the patterns already spell weak radicals.
var masdarRules = []rule{ruleInfix, ruleDoubled}

func masdarShapeOf(c RootClass) masdarShape {
	switch {
	case c.Has(Defective):
		return masdarDefective
	case c.Has(Hollow):
		return masdarHollow
	}
	return masdarSound
}

// verbalNoun derives the verbal nouns of a derived stem. Form I verbal
// nouns are lexical and not derived.
func verbalNoun(root VerbRoot, stem int) (EquivalenceSet, error) {
	if root.IsZero() {
		return EquivalenceSet{}, fmt.Errorf("%w: missing root", ErrInvalidRootRadicals)
	}
	quad := root.Len() == 4
	if stem < 1 || stem > 10 || (!quad && stem == 1) {
		return EquivalenceSet{}, fmt.Errorf("%w: no verbal noun pattern for stem %d", ErrUnsupportedParameterCombination, stem)
	}
	class := root.Classify()
	if stem == 9 && class.Has(Defective) {
		return EquivalenceSet{}, fmt.Errorf("%w: stem 9 of defective %s", ErrUnsupportedParameterCombination, root)
	}
	shape := masdarShapeOf(class)
	if quad {
		shape = masdarSound
	}
	ps, ok := masdarPatterns[masdarKey{quad, stem, shape}]
	if !ok {
		ps, ok = masdarPatterns[masdarKey{quad, stem, masdarSound}]
	}
	if !ok {
		return EquivalenceSet{}, fmt.Errorf("%w: no verbal noun pattern for stem %d of %s", ErrUnsupportedParameterCombination, stem, root)
	}
	c := &conjugation{
		Parameters: Parameters{Root: root, Stem: stem},
		class:      class,
		participle: true,
	}
	var words []Word
	for _, p := range ps {
		for _, v := range applyRules(c, masdarRules, p.fill(root, TashkilNone)) {
			words = append(words, orthography(v)...)
		}
	}
	return newEquivalenceSet(words...), nil
}
