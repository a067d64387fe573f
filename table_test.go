package arabdict

import (
	"errors"
	"testing"
)

func TestCellKey(t *testing.T) {
	tests := []struct {
		p    Parameters
		want string
	}{
		{Parameters{Person: Third}, "perfect.active.3ms"},
		{Parameters{Tense: Present, Mood: Jussive, Person: Second, Gender: Female, Numerus: Plural}, "present.active.jussive.2fp"},
		{Parameters{Voice: Passive, Person: First, Gender: Female}, "perfect.passive.1s"},
		{Parameters{Tense: Present, Person: First, Numerus: Dual}, "present.active.indicative.1p"},
		{Parameters{Tense: Present, Mood: Imperative, Person: Second, Gender: Female, Numerus: Dual}, "present.active.imperative.2d"},
	}
	for _, tc := range tests {
		if got := tc.p.CellKey(); got != tc.want {
			t.Errorf("CellKey(%+v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestCellsOrder(t *testing.T) {
	var keys []string
	for p := range cells(Parameters{Root: MustRoot("كتب"), Stem: 2}) {
		keys = append(keys, p.CellKey())
	}
	if len(keys) != 109 {
		t.Fatalf("cells yielded %d keys, want 109", len(keys))
	}
	if keys[0] != "perfect.active.3ms" {
		t.Errorf("first key = %q", keys[0])
	}
	if keys[len(keys)-1] != "present.passive.jussive.1p" {
		t.Errorf("last key = %q", keys[len(keys)-1])
	}
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %q", k)
		}
		seen[k] = true
	}
}

func TestTableMSA(t *testing.T) {
	tbl, err := table(msaTable, MustRoot("كتب"), 1, stem1("a", "u"))
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Cells) != 109 {
		t.Errorf("MSA table has %d cells, want 109", len(tbl.Cells))
	}
	want := map[string]string{
		"perfect.active.3ms":             "كَتَبَ",
		"present.active.indicative.3ms":  "يَكْتُبُ",
		"present.active.imperative.2mp":  "اُكْتُبُوا",
		"present.passive.indicative.3ms": "يُكْتَبُ",
	}
	for key, form := range want {
		got, ok := tbl.Lookup(key)
		if !ok {
			t.Errorf("Lookup(%q) missing", key)
			continue
		}
		if !got.Contains(MustParseWord(form)) {
			t.Errorf("Lookup(%q) = %s, want %s", key, got, form)
		}
	}
	if _, ok := tbl.Lookup("present.passive.imperative.2ms"); ok {
		t.Error("passive imperative cell present")
	}
}

func TestTableLebaneseSkipsUndefinedCells(t *testing.T) {
	tests := []struct {
		root string
		stem int
		ctx  *Stem1Context
	}{
		{"كتب", 1, stem1("a", "u")},
		{"قول", 1, stem1("a", "u")},
		{"حبب", 1, stem1("a", "i")},
		{"جيء", 1, stem1("i", "i")},
		{"لخبط", 2, nil},
		{"غذو", 5, nil},
		{"حمر", 9, nil},
	}
	for _, tc := range tests {
		tbl, err := table(lebaneseTable, MustRoot(tc.root), tc.stem, tc.ctx)
		if err != nil {
			t.Errorf("%s stem %d: %v", tc.root, tc.stem, err)
			continue
		}
		if len(tbl.Cells) != 34 {
			t.Errorf("%s stem %d: Lebanese table has %d cells, want 34", tc.root, tc.stem, len(tbl.Cells))
		}
		for _, c := range tbl.Cells {
			if c.Forms.Len() == 0 {
				t.Errorf("%s stem %d: cell %s is empty", tc.root, tc.stem, c.Key)
			}
		}
	}
}

func TestTableErrors(t *testing.T) {
	if _, err := table(msaTable, MustRoot("كتب"), 1, nil); !errors.Is(err, ErrInvalidStem1Context) {
		t.Errorf("missing context error = %v", err)
	}
	if _, err := table(lebaneseTable, MustRoot("قول"), 7, nil); !errors.Is(err, ErrUnsupportedParameterCombination) {
		t.Errorf("Lebanese stem 7 error = %v", err)
	}
}
