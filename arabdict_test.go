package arabdict

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewOptions(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Positive(t, c.workers)
	assert.Equal(t, DefaultCacheSize, c.cacheSize)

	c, err = New(WithWorkers(3), WithCacheSize(0))
	require.NoError(t, err)
	assert.Equal(t, 3, c.workers)
	assert.Nil(t, c.analyzer.memo)

	for name, opt := range map[string]Option{
		"nil logger":     WithLogger(nil),
		"zero workers":   WithWorkers(0),
		"negative cache": WithCacheSize(-1),
	} {
		_, err := New(opt)
		assert.Error(t, err, name)
	}
}

func TestConjugatorLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c, err := New(WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("conjugator ready").Len())

	_, err = c.AnalyzeConjugation(context.Background(), MSA, MustParseWord("كَتَبَ"))
	require.NoError(t, err)
	entries := logs.FilterMessage("analyzed surface form").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "analyzer", entries[0].LoggerName)
	assert.Equal(t, "msa", entries[0].ContextMap()["dialect"])
}

func TestConjugatorFacade(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	root := MustRoot("كتب")
	au := stem1("a", "u")

	forms, err := c.Conjugate(MSA, Parameters{Root: root, Stem: 1, Stem1Context: au, Person: Third})
	require.NoError(t, err)
	assert.Equal(t, canon("كَتَبَ"), forms.Strings())

	part, err := c.ConjugateParticiple(MSA, root, 1, Active, au)
	require.NoError(t, err)
	assert.Equal(t, canon("كَاتِب"), part.Strings())

	nouns, err := c.ConjugateVerbalNoun(root, 2)
	require.NoError(t, err)
	assert.Equal(t, canon("تَكْتِيب"), nouns.Strings())

	tbl, err := c.Table(Lebanese, root, 1, au)
	require.NoError(t, err)
	assert.Equal(t, Lebanese, tbl.Dialect)

	res, err := c.AnalyzeConjugation(context.Background(), MSA, MustParseWord("يَكْتُبُ"))
	require.NoError(t, err)
	assert.True(t, res[root].Has(1))
}

func TestConjugatorUnknownDialect(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	root := MustRoot("كتب")
	d := Dialect("egyptian")

	_, err = c.Conjugate(d, Parameters{Root: root, Stem: 2, Person: Third})
	assert.ErrorIs(t, err, ErrUnknownDialect)
	_, err = c.ConjugateParticiple(d, root, 2, Active, nil)
	assert.ErrorIs(t, err, ErrUnknownDialect)
	_, err = c.Table(d, root, 2, nil)
	assert.ErrorIs(t, err, ErrUnknownDialect)
	_, err = c.AnalyzeConjugation(context.Background(), d, MustParseWord("كَتَبَ"))
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestParseDialect(t *testing.T) {
	tests := map[string]Dialect{
		"msa":      MSA,
		"MSA":      MSA,
		"arb":      MSA,
		"stan1318": MSA,
		"lebanese": Lebanese,
		" apc ":    Lebanese,
		"stan1323": Lebanese,
	}
	for in, want := range tests {
		got, err := ParseDialect(in)
		if err != nil || got != want {
			t.Errorf("ParseDialect(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseDialect("arz"); !errors.Is(err, ErrUnknownDialect) {
		t.Errorf("ParseDialect(arz) error = %v", err)
	}
	info, err := DialectInfo(Lebanese)
	require.NoError(t, err)
	assert.Equal(t, "apc", info.ISO6393)
}

func TestSetsJSON(t *testing.T) {
	b, err := json.Marshal(StemSetOf(4, 1, 11))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,4]`, string(b))

	b, err = json.Marshal(StemSet(0))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	want := StemSetOf(1, 4, 10)
	b, err = json.Marshal(want)
	require.NoError(t, err)
	var stems StemSet
	require.NoError(t, json.Unmarshal(b, &stems))
	assert.Equal(t, want, stems)
	require.NoError(t, json.Unmarshal([]byte(`[]`), &stems))
	assert.Equal(t, StemSet(0), stems)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[1,11]`), &stems), ErrUnsupportedParameterCombination)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[0]`), &stems), ErrUnsupportedParameterCombination)
	assert.Error(t, json.Unmarshal([]byte(`"1,4"`), &stems))

	set := newEquivalenceSet(MustParseWord("حَنَّ"), MustParseWord("حَنَّ"), MustParseWord("حَنَنَ"))
	assert.Equal(t, 2, set.Len())
	b, err = json.Marshal(set)
	require.NoError(t, err)
	var back EquivalenceSet
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, set.Strings(), back.Strings())

	assert.Error(t, json.Unmarshal([]byte(`["abc"]`), &back))
}

func TestSortedResults(t *testing.T) {
	got := SortedResults(map[VerbRoot]StemSet{
		MustRoot("و-ع-د"): StemSetOf(1),
		MustRoot("ع-د-د"): StemSetOf(1, 4),
	})
	require.Len(t, got, 2)
	assert.Equal(t, "ع-د-د", got[0].Root.String())
	assert.Equal(t, "و-ع-د", got[1].Root.String())
	b, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"root":"ع-د-د","stems":[1,4]}`, string(b))

	var back RootAnalysisResult
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, got[0], back)
}
