package arabdict

import "fmt"

// Letter is one letter of the Arabic script as used in radicals, templates
// and affixes.
type Letter rune

// Letters of the radical inventory and the orthographic variants that the
// engine produces.
const (
	Hamza          Letter = 'ء'
	AlefHamza      Letter = 'أ'
	AlefHamzaBelow Letter = 'إ'
	WawHamza       Letter = 'ؤ'
	YaHamza        Letter = 'ئ'
	AlefMadda      Letter = 'آ'
	Alef           Letter = 'ا'
	AlefMaksura    Letter = 'ى'
	TaMarbuta      Letter = 'ة'

	Ba    Letter = 'ب'
	Ta    Letter = 'ت'
	Tha   Letter = 'ث'
	Jiim  Letter = 'ج'
	Hha   Letter = 'ح'
	Kha   Letter = 'خ'
	Dal   Letter = 'د'
	Dhal  Letter = 'ذ'
	Ra    Letter = 'ر'
	Zay   Letter = 'ز'
	Siin  Letter = 'س'
	Shiin Letter = 'ش'
	Sad   Letter = 'ص'
	Dad   Letter = 'ض'
	Tta   Letter = 'ط'
	Dha   Letter = 'ظ'
	Ain   Letter = 'ع'
	Ghain Letter = 'غ'
	Fa    Letter = 'ف'
	Qaf   Letter = 'ق'
	Kaf   Letter = 'ك'
	Lam   Letter = 'ل'
	Mim   Letter = 'م'
	Nun   Letter = 'ن'
	He    Letter = 'ه'
	Waw   Letter = 'و'
	Ya    Letter = 'ي'
)

// radicalLetters is the set of letters a root may be built from.
var radicalLetters = map[Letter]bool{
	Hamza: true, Ba: true, Ta: true, Tha: true, Jiim: true, Hha: true,
	Kha: true, Dal: true, Dhal: true, Ra: true, Zay: true, Siin: true,
	Shiin: true, Sad: true, Dad: true, Tta: true, Dha: true, Ain: true,
	Ghain: true, Fa: true, Qaf: true, Kaf: true, Lam: true, Mim: true,
	Nun: true, He: true, Waw: true, Ya: true,
}

// IsHamza reports whether l is ء or one of its seat forms.
func (l Letter) IsHamza() bool {
	switch l {
	case Hamza, AlefHamza, AlefHamzaBelow, WawHamza, YaHamza, AlefMadda:
		return true
	}
	return false
}

// IsWeak reports whether l is one of the weak radicals و and ي.
func (l Letter) IsWeak() bool {
	return l == Waw || l == Ya
}

// Radical folds hamza seat forms onto ء. Other letters are returned as is.
func (l Letter) Radical() Letter {
	if l.IsHamza() {
		return Hamza
	}
	return l
}

func (l Letter) String() string { return string(rune(l)) }

// Tashkil is a short-vowel, sukun or tanween mark. TashkilNone marks a
// letter carrying no vowel sign, such as a mater lectionis.
type Tashkil uint8

const (
	TashkilNone Tashkil = iota
	Fatha
	Kasra
	Dhamma
	Sukun
	Fathatan
	Kasratan
	Dhammatan
)

var tashkilNames = [...]string{"none", "fatha", "kasra", "dhamma", "sukun", "fathatan", "kasratan", "dhammatan"}

func (t Tashkil) String() string {
	if int(t) < len(tashkilNames) {
		return tashkilNames[t]
	}
	return "invalid"
}

// ParseTashkil accepts the names returned by String plus the one-letter
// shorthands a, i, u and 0 used by the CLI and the server.
func ParseTashkil(s string) (Tashkil, bool) {
	switch s {
	case "a":
		return Fatha, true
	case "i":
		return Kasra, true
	case "u":
		return Dhamma, true
	case "0":
		return Sukun, true
	}
	for i, n := range tashkilNames {
		if n == s {
			return Tashkil(i), true
		}
	}
	return TashkilNone, false
}

// MarshalText implements encoding.TextMarshaler.
func (t Tashkil) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tashkil) UnmarshalText(b []byte) error {
	v, ok := ParseTashkil(string(b))
	if !ok {
		return fmt.Errorf("unknown tashkil %q", b)
	}
	*t = v
	return nil
}

// shortVowel reports whether t is fatha, kasra or dhamma.
func (t Tashkil) shortVowel() bool {
	return t == Fatha || t == Kasra || t == Dhamma
}

// mater returns the long-vowel letter that lengthens t.
func (t Tashkil) mater() Letter {
	switch t {
	case Kasra:
		return Ya
	case Dhamma:
		return Waw
	}
	return Alef
}

// VocalizedGrapheme is one base letter with its gemination and vowel marks.
type VocalizedGrapheme struct {
	Letter  Letter
	Shadda  bool
	Tashkil Tashkil
}

// Word is a fully vocalized surface form.
type Word []VocalizedGrapheme

// Equal reports whether w and o match position by position on letter,
// shadda and tashkil.
func (w Word) Equal(o Word) bool {
	if len(w) != len(o) {
		return false
	}
	for i := range w {
		if w[i] != o[i] {
			return false
		}
	}
	return true
}

// Skeleton returns the bare letters of w.
func (w Word) Skeleton() string {
	rs := make([]rune, len(w))
	for i, g := range w {
		rs[i] = rune(g.Letter)
	}
	return string(rs)
}
