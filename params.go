package arabdict

import (
	"fmt"
	"strconv"
)

// Tense of a finite verb form.
type Tense uint8

const (
	Perfect Tense = iota
	Present
)

// Voice of a verb form.
type Voice uint8

const (
	Active Voice = iota
	Passive
)

// Mood of a present-tense form. Perfect forms are always Indicative.
type Mood uint8

const (
	Indicative Mood = iota
	Subjunctive
	Jussive
	Imperative
)

// Person of a finite form.
type Person uint8

const (
	First Person = iota + 1
	Second
	Third
)

// Gender of a finite form.
type Gender uint8

const (
	Male Gender = iota
	Female
)

// Numerus of a finite form.
type Numerus uint8

const (
	Singular Numerus = iota
	Dual
	Plural
)

var (
	tenseNames   = [...]string{"perfect", "present"}
	voiceNames   = [...]string{"active", "passive"}
	moodNames    = [...]string{"indicative", "subjunctive", "jussive", "imperative"}
	genderNames  = [...]string{"male", "female"}
	numerusNames = [...]string{"singular", "dual", "plural"}
)

func (t Tense) String() string   { return enumName(tenseNames[:], int(t)) }
func (v Voice) String() string   { return enumName(voiceNames[:], int(v)) }
func (m Mood) String() string    { return enumName(moodNames[:], int(m)) }
func (g Gender) String() string  { return enumName(genderNames[:], int(g)) }
func (n Numerus) String() string { return enumName(numerusNames[:], int(n)) }
func (p Person) String() string  { return strconv.Itoa(int(p)) }

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return "invalid"
}

func enumIndex(names []string, s string) (int, bool) {
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

// ParseTense reads "perfect" or "present".
func ParseTense(s string) (Tense, error) {
	i, ok := enumIndex(tenseNames[:], s)
	if !ok {
		return 0, fmt.Errorf("unknown tense %q", s)
	}
	return Tense(i), nil
}

// ParseVoice reads "active" or "passive".
func ParseVoice(s string) (Voice, error) {
	i, ok := enumIndex(voiceNames[:], s)
	if !ok {
		return 0, fmt.Errorf("unknown voice %q", s)
	}
	return Voice(i), nil
}

// ParseMood reads a mood name.
func ParseMood(s string) (Mood, error) {
	i, ok := enumIndex(moodNames[:], s)
	if !ok {
		return 0, fmt.Errorf("unknown mood %q", s)
	}
	return Mood(i), nil
}

// ParseGender reads "male" or "female", or the initials m and f.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "m":
		return Male, nil
	case "f":
		return Female, nil
	}
	i, ok := enumIndex(genderNames[:], s)
	if !ok {
		return 0, fmt.Errorf("unknown gender %q", s)
	}
	return Gender(i), nil
}

// ParseNumerus reads "singular", "dual" or "plural", or s, d and p.
func ParseNumerus(s string) (Numerus, error) {
	switch s {
	case "s":
		return Singular, nil
	case "d":
		return Dual, nil
	case "p":
		return Plural, nil
	}
	i, ok := enumIndex(numerusNames[:], s)
	if !ok {
		return 0, fmt.Errorf("unknown numerus %q", s)
	}
	return Numerus(i), nil
}

// ParsePerson reads 1, 2 or 3.
func ParsePerson(s string) (Person, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 3 {
		return 0, fmt.Errorf("unknown person %q", s)
	}
	return Person(n), nil
}

// Parameters select one cell of a conjugation.
type Parameters struct {
	Root VerbRoot
	// Stem is the verb form, 1 to 10 for triliteral roots and 1, 2 or 4 for
	// quadriliteral roots.
	Stem int
	// Stem1Context is required for stem 1 and must be nil otherwise.
	Stem1Context *Stem1Context
	Tense        Tense
	Voice        Voice
	Mood         Mood
	Person       Person
	Gender       Gender
	Numerus      Numerus
}

// personKey identifies the person, gender and number of a form with gender
// neutralized where Arabic does not mark it.
type personKey struct {
	person  Person
	gender  Gender
	numerus Numerus
}

func keyOf(p Person, g Gender, n Numerus) personKey {
	if p == First || (p == Second && n == Dual) {
		g = Male
	}
	if p == First && n == Dual {
		n = Plural
	}
	return personKey{p, g, n}
}

// String renders the key as in 3ms, 2fp or 1p.
func (k personKey) String() string {
	s := k.person.String()
	if !(k.person == First || (k.person == Second && k.numerus == Dual)) {
		s += k.gender.String()[:1]
	}
	return s + k.numerus.String()[:1]
}

func (p Parameters) key() personKey { return keyOf(p.Person, p.Gender, p.Numerus) }

// validate checks the shape of p independently of any dialect.
func (p Parameters) validate() error {
	if p.Root.IsZero() {
		return fmt.Errorf("%w: missing root", ErrInvalidRootRadicals)
	}
	quad := p.Root.Len() == 4
	switch {
	case p.Stem < 1 || p.Stem > 10:
		return fmt.Errorf("%w: stem %d", ErrUnsupportedParameterCombination, p.Stem)
	case quad && p.Stem != 1 && p.Stem != 2 && p.Stem != 4:
		return fmt.Errorf("%w: quadriliteral stem %d", ErrUnsupportedParameterCombination, p.Stem)
	}
	if err := checkContext(p.Root, p.Stem, p.Stem1Context); err != nil {
		return err
	}
	if p.Person < First || p.Person > Third || p.Gender > Female || p.Numerus > Plural {
		return fmt.Errorf("%w: person %d gender %d numerus %d", ErrUnsupportedParameterCombination, p.Person, p.Gender, p.Numerus)
	}
	if p.Tense == Perfect && p.Mood != Indicative {
		return fmt.Errorf("%w: %s perfect", ErrUnsupportedParameterCombination, p.Mood)
	}
	if p.Mood == Imperative && (p.Person != Second || p.Voice != Active) {
		return fmt.Errorf("%w: imperative %s %s", ErrUnsupportedParameterCombination, p.key(), p.Voice)
	}
	return nil
}

// checkContext validates the Form I context against the stem and root.
func checkContext(root VerbRoot, stem int, c *Stem1Context) error {
	if stem != 1 {
		if c != nil {
			return fmt.Errorf("%w: context given for stem %d", ErrInvalidStem1Context, stem)
		}
		return nil
	}
	if c == nil {
		return fmt.Errorf("%w: stem 1 of %s needs a context", ErrInvalidStem1Context, root)
	}
	if !root.allowsContext(*c) {
		return fmt.Errorf("%w: %s is not a context of %s", ErrInvalidStem1Context, c, root)
	}
	return nil
}
