package arabdict

import "fmt"

// conjugation is the state shared by the rules while one cell is built.
type conjugation struct {
	Parameters
	class RootClass
	irr   *irregular
	// participle is set while a participle or verbal noun is derived.
	participle bool
	// unmerged keeps doubled radicals apart.
	unmerged bool
	// aff is the suffix attached to the stem.
	aff affix
}

// lexicalVowel returns the lexical vowel the template gives radical 2.
func (c *conjugation) lexicalVowel() Tashkil {
	if c.Stem1Context == nil {
		return TashkilNone
	}
	if c.Tense == Perfect {
		return c.Stem1Context.PastVowel
	}
	return c.Stem1Context.PresentVowel
}

// jussive reports whether the mood ends the stem in sukun.
func (c *conjugation) jussive() bool {
	return c.Tense == Present && (c.Mood == Jussive || c.Mood == Imperative)
}

// rule rewrites a form and returns one or more variants. A rule that does
// not apply returns f unchanged.
type rule func(c *conjugation, f form) []form

// applyRules runs the chain over every variant.
func applyRules(c *conjugation, rules []rule, f form) []form {
	variants := []form{f}
	for _, r := range rules {
		var next []form
		for _, v := range variants {
			next = append(next, r(c, v)...)
		}
		variants = next
	}
	return variants
}

// conjugate builds one cell of table t. It is pure.
func conjugate(t *dialectTable, p Parameters) (EquivalenceSet, error) {
	if err := p.validate(); err != nil {
		return EquivalenceSet{}, err
	}
	class := p.Root.Classify()
	if !t.supports(p, class) {
		return EquivalenceSet{}, fmt.Errorf("%w: %s does not define stem %d %s %s %s %s of a %s root",
			ErrUnsupportedParameterCombination, t.info.Name, p.Stem, p.Tense, p.Voice, p.Mood, p.key(), class)
	}
	c := &conjugation{Parameters: p, class: class}
	if ir, ok := irregulars().lookup(p.Root); ok {
		c.irr = ir
	}
	var words []Word
	if t.grammar != nil {
		f, err := t.grammar.build(c)
		if err != nil {
			return EquivalenceSet{}, err
		}
		words = t.grammar.spell(f)
	} else {
		tmpl, ok := t.template(p)
		if !ok {
			return EquivalenceSet{}, fmt.Errorf("%w: %s has no stem %d %s %s template",
				ErrUnsupportedParameterCombination, t.info.Name, p.Stem, p.Tense, p.Voice)
		}
		aff, ok := t.suffix(p)
		if !ok {
			return EquivalenceSet{}, fmt.Errorf("%w: %s has no %s %s %s suffix",
				ErrUnsupportedParameterCombination, t.info.Name, p.Tense, p.Mood, p.key())
		}
		c.aff = aff
		f := tmpl.fill(p.Root, c.lexicalVowel())
		f[f.lastRadical()].Tashkil = aff.pre
		f = append(f, aff.slots()...)
		for _, v := range applyRules(c, t.rules, f) {
			v = t.prefix(c, v)
			words = append(words, orthography(v)...)
		}
	}
	if len(words) == 0 {
		return EquivalenceSet{}, fmt.Errorf("%w: no form for %s stem %d", ErrUnsupportedParameterCombination, p.Root, p.Stem)
	}
	return newEquivalenceSet(words...), nil
}
