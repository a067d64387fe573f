package arabdict

import (
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// canon renders each literal the way Word.String does so that tests do
// not depend on the order marks were typed in.
func canon(ss ...string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = MustParseWord(s).String()
	}
	return out
}

// stem1 returns a Form I context from two vowel shorthands.
func stem1(past, present string) *Stem1Context {
	p, _ := ParseTashkil(past)
	q, _ := ParseTashkil(present)
	return &Stem1Context{PastVowel: p, PresentVowel: q}
}

// cellParams builds the parameters of the cell named like CellKey, such
// as "present.active.jussive.3ms" or "perfect.active.1p".
func cellParams(t *testing.T, root string, stem int, c *Stem1Context, key string) Parameters {
	t.Helper()
	parts := strings.Split(key, ".")
	p := Parameters{Root: MustRoot(root), Stem: stem, Stem1Context: c}
	var err error
	if p.Tense, err = ParseTense(parts[0]); err != nil {
		t.Fatal(err)
	}
	if p.Voice, err = ParseVoice(parts[1]); err != nil {
		t.Fatal(err)
	}
	if len(parts) == 4 {
		if p.Mood, err = ParseMood(parts[2]); err != nil {
			t.Fatal(err)
		}
	}
	pk := parts[len(parts)-1]
	if p.Person, err = ParsePerson(pk[:1]); err != nil {
		t.Fatal(err)
	}
	if len(pk) == 3 {
		if p.Gender, err = ParseGender(pk[1:2]); err != nil {
			t.Fatal(err)
		}
	}
	if p.Numerus, err = ParseNumerus(pk[len(pk)-1:]); err != nil {
		t.Fatal(err)
	}
	return p
}
