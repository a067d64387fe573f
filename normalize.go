package arabdict

import (
	"fmt"
	"strings"
)

// Combining marks, in the canonical output order shadda then vowel.
const (
	markFatha     = 'َ'
	markKasra     = 'ِ'
	markDhamma    = 'ُ'
	markSukun     = 'ْ'
	markShadda    = 'ّ'
	markFathatan  = 'ً'
	markKasratan  = 'ٍ'
	markDhammatan = 'ٌ'
	tatweel       = 'ـ'
)

var markTashkil = map[rune]Tashkil{
	markFatha:     Fatha,
	markKasra:     Kasra,
	markDhamma:    Dhamma,
	markSukun:     Sukun,
	markFathatan:  Fathatan,
	markKasratan:  Kasratan,
	markDhammatan: Dhammatan,
}

var tashkilMark = [...]rune{
	Fatha:     markFatha,
	Kasra:     markKasra,
	Dhamma:    markDhamma,
	Sukun:     markSukun,
	Fathatan:  markFathatan,
	Kasratan:  markKasratan,
	Dhammatan: markDhammatan,
}

// surfaceLetters are the base letters a Word may contain.
var surfaceLetters = func() map[Letter]bool {
	m := map[Letter]bool{
		AlefHamza: true, AlefHamzaBelow: true, WawHamza: true, YaHamza: true,
		AlefMadda: true, Alef: true, AlefMaksura: true, TaMarbuta: true,
	}
	for l := range radicalLetters {
		m[l] = true
	}
	return m
}()

// ParseWord decodes a vocalized Arabic string. Marks may follow their
// letter in any order; tatweel is ignored.
func ParseWord(s string) (Word, error) {
	var w Word
	for _, r := range s {
		if r == tatweel {
			continue
		}
		if r == markShadda {
			if len(w) == 0 || w[len(w)-1].Shadda {
				return nil, fmt.Errorf("%w: misplaced shadda in %q", ErrMalformedWord, s)
			}
			w[len(w)-1].Shadda = true
			continue
		}
		if t, ok := markTashkil[r]; ok {
			if len(w) == 0 || w[len(w)-1].Tashkil != TashkilNone {
				return nil, fmt.Errorf("%w: misplaced %s in %q", ErrMalformedWord, t, s)
			}
			w[len(w)-1].Tashkil = t
			continue
		}
		if !surfaceLetters[Letter(r)] {
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrMalformedWord, r, s)
		}
		w = append(w, VocalizedGrapheme{Letter: Letter(r)})
	}
	if len(w) == 0 {
		return nil, fmt.Errorf("%w: empty word", ErrMalformedWord)
	}
	return w, nil
}

// MustParseWord is like ParseWord but panics on malformed input. It is
// meant for literals in tables and tests.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String renders w as Unicode, each letter followed by shadda then vowel.
func (w Word) String() string {
	var b strings.Builder
	for _, g := range w {
		b.WriteRune(rune(g.Letter))
		if g.Shadda {
			b.WriteRune(markShadda)
		}
		if g.Tashkil != TashkilNone {
			b.WriteRune(tashkilMark[g.Tashkil])
		}
	}
	return b.String()
}

// buckwalterPairs maps each Arabic code point to its Buckwalter symbol.
var buckwalterPairs = []string{
	"ء", "'", "آ", "|", "أ", ">", "ؤ", "&", "إ", "<", "ئ", "}",
	"ا", "A", "ب", "b", "ة", "p", "ت", "t", "ث", "v", "ج", "j",
	"ح", "H", "خ", "x", "د", "d", "ذ", "*", "ر", "r", "ز", "z",
	"س", "s", "ش", "$", "ص", "S", "ض", "D", "ط", "T", "ظ", "Z",
	"ع", "E", "غ", "g", "ف", "f", "ق", "q", "ك", "k", "ل", "l",
	"م", "m", "ن", "n", "ه", "h", "و", "w", "ى", "Y", "ي", "y",
	"َ", "a", "ُ", "u", "ِ", "i", "ْ", "o",
	"ّ", "~", "ً", "F", "ٌ", "N", "ٍ", "K",
}

var (
	toBuckwalter   = strings.NewReplacer(buckwalterPairs...)
	fromBuckwalter = strings.NewReplacer(swapPairs(buckwalterPairs)...)
)

func swapPairs(p []string) []string {
	out := make([]string, len(p))
	for i := 0; i < len(p); i += 2 {
		out[i], out[i+1] = p[i+1], p[i]
	}
	return out
}

// Buckwalter renders w in Buckwalter transliteration.
func (w Word) Buckwalter() string {
	return toBuckwalter.Replace(w.String())
}

// ParseBuckwalter decodes a Buckwalter transliterated word.
func ParseBuckwalter(s string) (Word, error) {
	return ParseWord(fromBuckwalter.Replace(s))
}

// foldSeats maps hamza seat forms onto ء and strips marks, giving the
// spelling used for radical lookups.
var foldSeats = strings.NewReplacer(
	"أ", "ء", "إ", "ء", "ؤ", "ء", "ئ", "ء", "آ", "ء",
	"َ", "", "ُ", "", "ِ", "", "ْ", "",
	"ّ", "", "ً", "", "ٌ", "", "ٍ", "",
	"ـ", "", "-", "", " ", "",
)
