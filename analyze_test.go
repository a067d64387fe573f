package arabdict

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func newTestAnalyzer(t *testing.T, cacheSize int) *analyzer {
	t.Helper()
	a, err := newAnalyzer(zap.NewNop(), 4, cacheSize)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func stemsByRoot(m map[VerbRoot]StemSet) map[string][]int {
	out := make(map[string][]int, len(m))
	for r, s := range m {
		out[r.String()] = s.Stems()
	}
	return out
}

func TestAnalyzeDoubledAndWeakReadings(t *testing.T) {
	want := map[string][]int{
		"ع-و-د": {1, 4},
		"ع-د-د": {1, 4},
		"و-ع-د": {1},
	}
	for _, size := range []int{0, 64} {
		a := newTestAnalyzer(t, size)
		got, err := a.analyze(context.Background(), msaTable, MustParseWord("يُعِدّ"))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, stemsByRoot(got)); diff != "" {
			t.Errorf("analyze(يُعِدّ) cache %d mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestAnalyzeFindsGeneratedForms(t *testing.T) {
	a := newTestAnalyzer(t, 256)
	tests := []struct {
		d       Dialect
		surface string
		root    string
		stem    int
	}{
		{MSA, "كَتَبَ", "ك-ت-ب", 1},
		{MSA, "يَكْتُبُونَ", "ك-ت-ب", 1},
		{MSA, "عَلَّمَ", "ع-ل-م", 2},
		{MSA, "اِسْتَغْفَرَ", "غ-ف-ر", 10},
		{MSA, "قَالَ", "ق-و-ل", 1},
		{MSA, "رَمَى", "ر-م-ي", 1},
		{MSA, "يَجِدُ", "و-ج-د", 1},
		{MSA, "اِتَّصَلَ", "و-ص-ل", 8},
		{MSA, "يعد", "و-ع-د", 1},
		{MSA, "يَعِي", "و-ع-ي", 1},
		{MSA, "اِيتِ", "ء-ت-ي", 1},
		{MSA, "يُرُونَ", "ر-ء-ي", 4},
		{Lebanese, "بْيِكْتُبْ", "ك-ت-ب", 1},
		{Lebanese, "تَعَا", "ج-ي-ء", 1},
		{Lebanese, "بْيِجِي", "ج-ي-ء", 1},
	}
	for _, tc := range tests {
		tbl, _ := tableFor(tc.d)
		got, err := a.analyze(context.Background(), tbl, MustParseWord(tc.surface))
		if err != nil {
			t.Errorf("analyze(%s): %v", tc.surface, err)
			continue
		}
		if !got[MustRoot(tc.root)].Has(tc.stem) {
			t.Errorf("analyze(%s) = %v, want %s stem %d", tc.surface, SortedResults(got), tc.root, tc.stem)
		}
	}
}

func TestAnalyzeStrictMarks(t *testing.T) {
	a := newTestAnalyzer(t, 0)
	got, err := a.analyze(context.Background(), msaTable, MustParseWord("كُتِبَ"))
	if err != nil {
		t.Fatal(err)
	}
	if !got[MustRoot("كتب")].Has(1) {
		t.Errorf("passive كُتِبَ not read as ك-ت-ب stem 1: %v", SortedResults(got))
	}
	got, err = a.analyze(context.Background(), msaTable, MustParseWord("كُتُبُ"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got[MustRoot("كتب")]; ok {
		t.Errorf("vowels of كُتُبُ should rule out every cell of ك-ت-ب: %v", SortedResults(got))
	}
}

func TestAnalyzeErrors(t *testing.T) {
	a := newTestAnalyzer(t, 0)
	if _, err := a.analyze(context.Background(), msaTable, nil); !errors.Is(err, ErrMalformedWord) {
		t.Errorf("empty surface error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.analyze(ctx, msaTable, MustParseWord("يُعِدّ")); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled analyze error = %v", err)
	}
}

func TestHypothesesAreUnique(t *testing.T) {
	seen := map[hypothesis]bool{}
	var roots []string
	for h := range hypotheses(msaTable, MustParseWord("يُعِدّ")) {
		if seen[h] {
			t.Errorf("hypothesis %s mode %d yielded twice", h.root, h.mode)
		}
		seen[h] = true
		roots = append(roots, h.root.String())
	}
	if !slices.Contains(roots, "و-ع-د") {
		t.Errorf("hypotheses lack و-ع-د: %v", roots)
	}
	if len(roots) < 2 {
		t.Fatalf("hypotheses = %v, want several", roots)
	}

	var first []hypothesis
	for h := range hypotheses(msaTable, MustParseWord("يُعِدّ")) {
		first = append(first, h)
		break
	}
	if len(first) != 1 {
		t.Errorf("early stop yielded %d hypotheses", len(first))
	}
}

func TestRootHypothesesDoubledLastRadical(t *testing.T) {
	tests := []struct {
		core string
		want []string
	}{
		{"كتبب", []string{"ك-ت-ب-ب", "ك-ت-ب"}},
		{"ترجمم", []string{"ت-ر-ج-م"}},
		{"ترجمن", nil},
	}
	for _, tc := range tests {
		var got []string
		rootHypotheses([]Letter(tc.core), func(m matchMode, radicals ...Letter) {
			r, err := FromRadicals(radicals...)
			if err == nil {
				got = append(got, r.String())
			}
		})
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("rootHypotheses(%s) mismatch (-want +got):\n%s", tc.core, diff)
		}
	}
}

func TestAnalyzeDoubledLastRadical(t *testing.T) {
	a := newTestAnalyzer(t, 256)
	tests := []struct {
		surface string
		root    string
		stem    int
	}{
		{"اِكْتَبَبْتَ", "ك-ت-ب", 9},
		{"تَذْكَرِرْ", "ذ-ك-ر", 9},
		{"اِحْمَرَرْتُ", "ح-م-ر", 9},
		{"اِتْرَجْمَمْتِ", "ت-ر-ج-م", 4},
		{"اِقْشَعْرَرْتُ", "ق-ش-ع-ر", 4},
	}
	for _, tc := range tests {
		got, err := a.analyze(context.Background(), msaTable, MustParseWord(tc.surface))
		if err != nil {
			t.Errorf("analyze(%s): %v", tc.surface, err)
			continue
		}
		if !got[MustRoot(tc.root)].Has(tc.stem) {
			t.Errorf("analyze(%s) = %v, want %s stem %d", tc.surface, SortedResults(got), tc.root, tc.stem)
		}
	}
}

func TestFoldLetters(t *testing.T) {
	got := string(foldLetters(MustParseWord("آكُلُ")))
	if want := "ءاكل"; got != want {
		t.Errorf("foldLetters = %q, want %q", got, want)
	}
}

func TestMatchModes(t *testing.T) {
	gen := MustParseWord("يَعِدُ")
	tests := []struct {
		mode    matchMode
		surface string
		want    bool
	}{
		{matchStrict, "يعد", true},
		{matchStrict, "يَعِدُ", true},
		{matchStrict, "يُعِدُ", false},
		{matchStrict, "يَعِدّ", false},
		{matchSkeleton, "يُعِدّ", true},
		{matchSkeleton, "يعدو", false},
	}
	for _, tc := range tests {
		if got := tc.mode.matches(gen, MustParseWord(tc.surface)); got != tc.want {
			t.Errorf("mode %d matches(%s, %s) = %v, want %v", tc.mode, gen, tc.surface, got, tc.want)
		}
	}
}
