package arabdict

import (
	"fmt"
	"strings"
)

// VerbRoot is a triliteral or quadriliteral consonantal root. It is
// comparable and may be used as a map key.
type VerbRoot struct {
	radicals [4]Letter
	n        uint8
}

// FromRadicals builds a root from 3 or 4 radicals. Hamza seat forms are
// folded onto ء.
func FromRadicals(letters ...Letter) (VerbRoot, error) {
	var r VerbRoot
	if len(letters) != 3 && len(letters) != 4 {
		return r, fmt.Errorf("%w: got %d radicals", ErrInvalidRootRadicals, len(letters))
	}
	for i, l := range letters {
		l = l.Radical()
		if !radicalLetters[l] {
			return VerbRoot{}, fmt.Errorf("%w: %q is not a radical", ErrInvalidRootRadicals, rune(l))
		}
		r.radicals[i] = l
	}
	r.n = uint8(len(letters))
	return r, nil
}

// MustRoot is like ParseRoot but panics on error.
func MustRoot(s string) VerbRoot {
	r, err := ParseRoot(s)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRoot reads a root written with or without separating dashes, such as
// "ك-ت-ب" or "كتب".
func ParseRoot(s string) (VerbRoot, error) {
	folded := foldSeats.Replace(strings.TrimSpace(s))
	var letters []Letter
	for _, c := range folded {
		letters = append(letters, Letter(c))
	}
	return FromRadicals(letters...)
}

// Len returns the number of radicals.
func (r VerbRoot) Len() int { return int(r.n) }

// R returns the i-th radical, counting from 1.
func (r VerbRoot) R(i int) Letter { return r.radicals[i-1] }

// Radicals returns a copy of the radicals.
func (r VerbRoot) Radicals() []Letter {
	return append([]Letter(nil), r.radicals[:r.n]...)
}

// IsZero reports whether r is the zero root.
func (r VerbRoot) IsZero() bool { return r.n == 0 }

func (r VerbRoot) String() string {
	parts := make([]string, r.n)
	for i := range parts {
		parts[i] = r.radicals[i].String()
	}
	return strings.Join(parts, "-")
}

// MarshalText implements encoding.TextMarshaler so roots can key JSON maps.
func (r VerbRoot) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *VerbRoot) UnmarshalText(b []byte) error {
	v, err := ParseRoot(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RootClass is a set of weakness and shape flags of a root.
type RootClass uint16

const (
	// Assimilated roots have و or ي as first radical.
	Assimilated RootClass = 1 << iota
	// Hollow roots have و or ي as second radical and a strong third.
	Hollow
	// Defective roots have و or ي as third radical.
	Defective
	// Doubled roots repeat their strong last radical.
	Doubled
	Quadriliteral
	HamzaR1
	HamzaR2
	HamzaR3
	// HamzaR4 marks a quadriliteral root ending in ء.
	HamzaR4
)

// Has reports whether every flag of f is set in c.
func (c RootClass) Has(f RootClass) bool { return c&f == f }

// Sound reports whether no weakness flag is set. Hamza flags do not make a
// root weak.
func (c RootClass) Sound() bool {
	return c&(Assimilated|Hollow|Defective|Doubled) == 0
}

var classNames = []struct {
	flag RootClass
	name string
}{
	{Assimilated, "assimilated"},
	{Hollow, "hollow"},
	{Defective, "defective"},
	{Doubled, "doubled"},
	{Quadriliteral, "quadriliteral"},
	{HamzaR1, "hamza-r1"},
	{HamzaR2, "hamza-r2"},
	{HamzaR3, "hamza-r3"},
	{HamzaR4, "hamza-r4"},
}

func (c RootClass) String() string {
	var names []string
	for _, cn := range classNames {
		if c.Has(cn.flag) {
			names = append(names, cn.name)
		}
	}
	if len(names) == 0 {
		return "sound"
	}
	return strings.Join(names, ",")
}

// Classify derives the weakness flags of r from its radicals.
func (r VerbRoot) Classify() RootClass {
	var c RootClass
	for i := 0; i < int(r.n) && i < 3; i++ {
		if r.radicals[i] == Hamza {
			c |= HamzaR1 << i
		}
	}
	if r.n == 4 {
		c |= Quadriliteral
		if r.radicals[3] == Hamza {
			c |= HamzaR4
		}
		return c
	}
	r1, r2, r3 := r.radicals[0], r.radicals[1], r.radicals[2]
	if r1.IsWeak() {
		c |= Assimilated
	}
	if r3.IsWeak() {
		c |= Defective
	} else {
		if r2.IsWeak() {
			c |= Hollow
		}
		if r2 == r3 {
			c |= Doubled
		}
	}
	return c
}

// Stem1Context carries the lexical vowels of a Form I verb.
type Stem1Context struct {
	// PastVowel is the vowel of the second radical in the perfect.
	PastVowel Tashkil `json:"past" yaml:"past"`
	// PresentVowel is the vowel of the second radical in the imperfect.
	PresentVowel Tashkil `json:"present" yaml:"present"`
	// SoundOverride keeps an assimilated first radical in the imperfect.
	SoundOverride bool `json:"soundOverride,omitempty" yaml:"soundOverride,omitempty"`
}

func (c Stem1Context) String() string {
	s := c.PastVowel.String() + "/" + c.PresentVowel.String()
	if c.SoundOverride {
		s += "/sound"
	}
	return s
}

func ctx(past, present Tashkil) Stem1Context {
	return Stem1Context{PastVowel: past, PresentVowel: present}
}

var (
	soundChoices = []Stem1Context{
		ctx(Fatha, Dhamma), ctx(Fatha, Kasra), ctx(Fatha, Fatha),
		ctx(Kasra, Fatha), ctx(Kasra, Kasra), ctx(Dhamma, Dhamma),
	}
	assimilatedChoices = append(append([]Stem1Context(nil), soundChoices...),
		Stem1Context{PastVowel: Kasra, PresentVowel: Fatha, SoundOverride: true})
	hollowWawChoices     = []Stem1Context{ctx(Fatha, Dhamma), ctx(Dhamma, Dhamma), ctx(Kasra, Fatha)}
	hollowYaChoices      = []Stem1Context{ctx(Fatha, Kasra), ctx(Kasra, Kasra), ctx(Kasra, Fatha)}
	defectiveYaChoices   = []Stem1Context{ctx(Fatha, Kasra), ctx(Kasra, Fatha)}
	defectiveWawChoices  = []Stem1Context{ctx(Fatha, Dhamma), ctx(Kasra, Fatha)}
	doubledChoices       = []Stem1Context{ctx(Fatha, Dhamma), ctx(Fatha, Kasra), ctx(Fatha, Fatha), ctx(Kasra, Fatha)}
	quadriliteralChoices = []Stem1Context{ctx(Sukun, Sukun)}
)

// Stem1ContextChoices lists the Form I contexts legal for r. Roots with an
// entry in the irregular table use the contexts listed there.
func (r VerbRoot) Stem1ContextChoices() []Stem1Context {
	if ir, ok := irregulars().lookup(r); ok && len(ir.Contexts) > 0 {
		return append([]Stem1Context(nil), ir.Contexts...)
	}
	var choices []Stem1Context
	c := r.Classify()
	switch {
	case c.Has(Quadriliteral):
		choices = quadriliteralChoices
	case c.Has(Defective) && r.R(3) == Waw:
		choices = defectiveWawChoices
	case c.Has(Defective):
		choices = defectiveYaChoices
	case c.Has(Hollow) && r.R(2) == Waw:
		choices = hollowWawChoices
	case c.Has(Hollow):
		choices = hollowYaChoices
	case c.Has(Doubled):
		choices = doubledChoices
	case c.Has(Assimilated):
		choices = assimilatedChoices
	default:
		choices = soundChoices
	}
	return append([]Stem1Context(nil), choices...)
}

// allowsContext reports whether c is among the legal contexts of r.
func (r VerbRoot) allowsContext(c Stem1Context) bool {
	for _, o := range r.Stem1ContextChoices() {
		if o == c {
			return true
		}
	}
	return false
}
