package arabdict

import "fmt"

// vowel is what follows a consonant in a rule tree: nothing, sukun, a
// short or long vowel, a diphthong, or a placeholder resolved from the
// stem 1 context.
type vowel uint8

const (
	vowelInherit vowel = iota
	vowelBare
	vowelSukun
	vowelShortA
	vowelShortI
	vowelShortU
	vowelLongA
	vowelLongI
	vowelLongU
	// vowelBrokenA is fatha followed by ى.
	vowelBrokenA
	// vowelDiphthong is fatha followed by يْ.
	vowelDiphthong
	// vowelLexical is the short present vowel of the context.
	vowelLexical
	// vowelLexicalLong is the long present vowel of the context.
	vowelLexicalLong
	// vowelClosed is the hollow perfect vowel before a consonant suffix.
	vowelClosed
)

func shortVowel(t Tashkil) vowel {
	switch t {
	case Fatha:
		return vowelShortA
	case Kasra:
		return vowelShortI
	case Dhamma:
		return vowelShortU
	}
	return vowelSukun
}

func longVowel(t Tashkil) vowel {
	switch t {
	case Fatha:
		return vowelLongA
	case Kasra:
		return vowelLongI
	case Dhamma:
		return vowelLongU
	}
	return vowelSukun
}

// resolve replaces the context placeholders of v.
func (v vowel) resolve(c *conjugation) vowel {
	switch v {
	case vowelLexical:
		return shortVowel(c.Stem1Context.PresentVowel)
	case vowelLexicalLong:
		return longVowel(c.Stem1Context.PresentVowel)
	case vowelClosed:
		return shortVowel(closedPastVowel(c))
	}
	return v
}

// slots spells l followed by v.
func (v vowel) slots(l Letter) form {
	g := func(t Tashkil) slot { return letter(l, t) }
	switch v {
	case vowelSukun:
		return form{g(Sukun)}
	case vowelShortA:
		return form{g(Fatha)}
	case vowelShortI:
		return form{g(Kasra)}
	case vowelShortU:
		return form{g(Dhamma)}
	case vowelLongA:
		return form{g(Fatha), mater(Alef)}
	case vowelLongI:
		return form{g(Kasra), mater(Ya)}
	case vowelLongU:
		return form{g(Dhamma), mater(Waw)}
	case vowelBrokenA:
		return form{g(Fatha), mater(AlefMaksura)}
	case vowelDiphthong:
		return form{g(Fatha), letter(Ya, Sukun)}
	}
	return form{g(TashkilNone)}
}

// symbol is a radical number or a fixed letter.
type symbol struct {
	radical int8
	letter  Letter
}

func rad(n int8) symbol { return symbol{radical: n} }
func lit(l Letter) symbol { return symbol{letter: l} }

// radicalSeq returns radicals 1 to n.
func radicalSeq(n int8) []symbol {
	out := make([]symbol, n)
	for i := range out {
		out[i] = rad(int8(i + 1))
	}
	return out
}

// item is one consonant and the vowel after it.
type item struct {
	letter Letter
	vowel  vowel
}

// firstPerson selects the first singular subjunctive prefix.
type firstPerson uint8

const (
	// firstAuto writes ء only before a silent first consonant.
	firstAuto firstPerson = iota
	firstHamza
	firstAlef
)

// treeNode is one branch of a rule tree. The first child whose condition
// holds is taken; every field it sets overrides its parent's.
type treeNode struct {
	when     func(c *conjugation) bool
	symbols  []symbol
	vowels   []vowel
	prefix   vowel
	first    firstPerson
	children []treeNode
}

// treeChoice is the outcome of walking a tree.
type treeChoice struct {
	symbols []symbol
	vowels  []vowel
	prefix  vowel
	first   firstPerson
}

func (n *treeNode) choose(c *conjugation) treeChoice {
	var ch treeChoice
	take := func(n *treeNode) {
		if n.symbols != nil {
			ch.symbols = n.symbols
		}
		if n.vowels != nil {
			ch.vowels = n.vowels
		}
		if n.prefix != vowelInherit {
			ch.prefix = n.prefix
		}
		if n.first != firstAuto {
			ch.first = n.first
		}
	}
	take(n)
	for level := n.children; len(level) > 0; {
		var next *treeNode
		for i := range level {
			if level[i].when == nil || level[i].when(c) {
				next = &level[i]
				break
			}
		}
		if next == nil {
			break
		}
		take(next)
		level = next.children
	}
	return ch
}

// shape groups roots that share a rule tree.
type shape uint8

const (
	shapeSound shape = iota
	shapeAssimilated
	shapeHollow
	shapeDefective
	shapeDoubled
	shapeQuadriliteral
	shapeHamzaR1
	// shapeContracted is a hamza R1 root whose imperfect fuses the
	// prefix with the hamza (آخُذ).
	shapeContracted
	// shapeSuppletive is a root with its own paradigm (إِجَا).
	shapeSuppletive
)

func shapeOf(class RootClass, irr *irregular) shape {
	switch {
	case irr != nil && irr.Suppletive:
		return shapeSuppletive
	case irr != nil && irr.Contracted:
		return shapeContracted
	case class.Has(Quadriliteral):
		return shapeQuadriliteral
	case class.Has(Defective):
		return shapeDefective
	case class.Has(Hollow):
		return shapeHollow
	case class.Has(Doubled):
		return shapeDoubled
	case class.Has(Assimilated):
		return shapeAssimilated
	case class.Has(HamzaR1):
		return shapeHamzaR1
	}
	return shapeSound
}

type treeKey struct {
	stem  int
	shape shape
}

// treeSuffix is an inflectional ending: the vowel it gives the last stem
// consonant when the tree leaves it open, the consonants it adds, and a
// trailing bare ا.
type treeSuffix struct {
	prev  vowel
	items []item
	alef  bool
}

func (s treeSuffix) letters() []Letter {
	var out []Letter
	for _, it := range s.items {
		for _, sl := range it.vowel.slots(it.letter) {
			out = append(out, sl.Letter)
		}
	}
	if s.alef {
		out = append(out, Alef)
	}
	return out
}

// treeGrammar is a dialect described by rule trees instead of templates.
type treeGrammar struct {
	trees map[treeKey]*treeNode

	// soundFallback lists per shape the stems that take the sound tree.
	soundFallback map[shape][]int

	perfect map[personKey]treeSuffix
	present map[personKey]treeSuffix

	// prefix returns the prefix items given the prefix vowel of the
	// tree and the vowel after the first stem consonant.
	prefix func(c *conjugation, pv, following vowel, first firstPerson) []item

	// spell turns the assembled form into written words.
	spell func(f form) []Word
}

func (g *treeGrammar) tree(stem int, s shape) *treeNode {
	if n, ok := g.trees[treeKey{stem, s}]; ok {
		return n
	}
	for _, st := range g.soundFallback[s] {
		if st == stem {
			return g.trees[treeKey{stem, shapeSound}]
		}
	}
	return nil
}

func (g *treeGrammar) suffix(p Parameters) (treeSuffix, bool) {
	m := g.present
	if p.Tense == Perfect {
		m = g.perfect
	}
	s, ok := m[p.key()]
	return s, ok
}

// build assembles the unspelled form of one cell.
func (g *treeGrammar) build(c *conjugation) (form, error) {
	n := g.tree(c.Stem, shapeOf(c.class, c.irr))
	if n == nil {
		return nil, fmt.Errorf("%w: no stem %d tree for a %s root", ErrUnsupportedParameterCombination, c.Stem, c.class)
	}
	suf, ok := g.suffix(c.Parameters)
	if !ok {
		return nil, fmt.Errorf("%w: no %s %s suffix", ErrUnsupportedParameterCombination, c.Tense, c.key())
	}
	ch := n.choose(c)
	if len(ch.symbols) == 0 {
		return nil, fmt.Errorf("%w: empty stem %d tree for %s", ErrUnsupportedParameterCombination, c.Stem, c.Root)
	}
	stem := make([]item, 0, len(ch.symbols)+len(suf.items))
	for i, s := range ch.symbols {
		it := item{letter: s.letter, vowel: suf.prev}
		if s.radical > 0 {
			it.letter = c.Root.R(int(s.radical))
		}
		if i < len(ch.vowels) {
			it.vowel = ch.vowels[i].resolve(c)
		}
		stem = append(stem, it)
	}
	stem = append(stem, suf.items...)

	pv := ch.prefix
	if pv == vowelInherit {
		pv = vowelSukun
	}
	var f form
	for _, it := range g.prefix(c, pv, stem[0].vowel, ch.first) {
		for _, s := range it.vowel.slots(it.letter) {
			s.prefix = true
			f = append(f, s)
		}
	}
	for i, it := range stem {
		sl := it.vowel.slots(it.letter)
		if i < len(ch.symbols) {
			sl[0].radical = ch.symbols[i].radical
		} else {
			sl[0].suffix = true
		}
		f = append(f, sl...)
	}
	if suf.alef {
		s := mater(Alef)
		s.suffix = true
		f = append(f, s)
	}
	return f, nil
}

// spellItems spells a participle or other fixed item sequence.
func (g *treeGrammar) spellItems(items []item) []Word {
	var f form
	for _, it := range items {
		f = append(f, it.vowel.slots(it.letter)...)
	}
	return g.spell(f)
}
