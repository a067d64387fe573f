package arabdict

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// slot is one grapheme of a form under construction. radical is the
// radical number the slot was filled from, 0 for augments and affixes.
type slot struct {
	VocalizedGrapheme
	radical int8
	suffix  bool
	prefix  bool
}

// form is a word under construction.
type form []slot

func (f form) clone() form { return append(form(nil), f...) }

// radicalAt returns the index of the last slot filled from radical n, or
// -1.
func (f form) radicalAt(n int) int {
	for i := len(f) - 1; i >= 0; i-- {
		if int(f[i].radical) == n {
			return i
		}
	}
	return -1
}

// lastRadical returns the index of the last radical slot, or -1.
func (f form) lastRadical() int {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i].radical > 0 {
			return i
		}
	}
	return -1
}

// suffixStart returns the index of the first suffix slot, or len(f).
func (f form) suffixStart() int {
	for i, s := range f {
		if s.suffix {
			return i
		}
	}
	return len(f)
}

// suffixLetter returns the first letter of the suffix, or 0.
func (f form) suffixLetter() Letter {
	if i := f.suffixStart(); i < len(f) {
		return f[i].Letter
	}
	return 0
}

func (f form) remove(i int) form {
	return append(f[:i:i], f[i+1:]...)
}

func (f form) insert(i int, s ...slot) form {
	out := make(form, 0, len(f)+len(s))
	out = append(out, f[:i]...)
	out = append(out, s...)
	return append(out, f[i:]...)
}

func (f form) word() Word {
	w := make(Word, len(f))
	for i, s := range f {
		w[i] = s.VocalizedGrapheme
	}
	return w
}

func (f form) String() string { return f.word().String() }

func mater(l Letter) slot {
	return slot{VocalizedGrapheme: VocalizedGrapheme{Letter: l}}
}

func letter(l Letter, t Tashkil) slot {
	return slot{VocalizedGrapheme: VocalizedGrapheme{Letter: l, Tashkil: t}}
}

// prefixed returns f with a prefix letter in front.
func (f form) prefixed(l Letter, t Tashkil) form {
	s := letter(l, t)
	s.prefix = true
	return f.insert(0, s)
}

// isMater reports whether g is a long-vowel letter.
func (g VocalizedGrapheme) isMater() bool {
	switch g.Letter {
	case Alef, AlefMaksura, Waw, Ya:
		return g.Tashkil == TashkilNone && !g.Shadda
	}
	return false
}

// pattern is a parsed template. Each element is a radical number or an
// augment letter followed by its marks.
//
//	1a 2~i 3   radical 1 with fatha, radical 2 doubled with kasra, radical 3
//	تa ا       augment ت with fatha, bare ا
//	2V         radical 2 with the lexical vowel of the stem 1 context
type pattern []patternSlot

type patternSlot struct {
	radical int8
	letter  Letter
	shadda  bool
	tashkil Tashkil
	lexical bool
}

var patternMarks = map[rune]Tashkil{
	'a': Fatha, 'i': Kasra, 'u': Dhamma, 'o': Sukun,
	'A': Fathatan, 'I': Kasratan, 'U': Dhammatan,
}

// parsePattern reads the template notation shown on pattern.
func parsePattern(s string) (pattern, error) {
	var p pattern
	for _, tok := range strings.Fields(s) {
		r, size := utf8.DecodeRuneInString(tok)
		var ps patternSlot
		switch {
		case r >= '1' && r <= '4':
			ps.radical = int8(r - '0')
		case surfaceLetters[Letter(r)]:
			ps.letter = Letter(r)
		default:
			return nil, fmt.Errorf("pattern %q: bad element %q", s, tok)
		}
		for _, m := range tok[size:] {
			switch m {
			case '~':
				ps.shadda = true
			case 'V':
				ps.lexical = true
			default:
				t, ok := patternMarks[m]
				if !ok {
					return nil, fmt.Errorf("pattern %q: bad mark %q", s, m)
				}
				ps.tashkil = t
			}
		}
		p = append(p, ps)
	}
	return p, nil
}

func mustPattern(s string) pattern {
	p, err := parsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// fill places the radicals of root into the pattern. lexical marks take
// the vowel v.
func (p pattern) fill(root VerbRoot, v Tashkil) form {
	f := make(form, len(p))
	for i, ps := range p {
		s := slot{VocalizedGrapheme: VocalizedGrapheme{Letter: ps.letter, Shadda: ps.shadda, Tashkil: ps.tashkil}}
		if ps.radical > 0 {
			s.radical = ps.radical
			s.Letter = root.R(int(ps.radical))
		}
		if ps.lexical {
			s.Tashkil = v
		}
		f[i] = s
	}
	return f
}

// affix is a suffix together with the vowel it imposes on the last
// radical.
type affix struct {
	pre  Tashkil
	text Word
}

func suffixOf(pre Tashkil, text string) affix {
	a := affix{pre: pre}
	if text != "" {
		a.text = MustParseWord(text)
	}
	return a
}

func (a affix) slots() form {
	f := make(form, len(a.text))
	for i, g := range a.text {
		f[i] = slot{VocalizedGrapheme: g, suffix: true}
	}
	return f
}
