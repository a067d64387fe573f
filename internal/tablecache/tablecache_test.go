package tablecache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arabdict/arabdict"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	b, ok := m.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return b, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

type countingGen struct {
	conj  *arabdict.Conjugator
	calls int
}

func (g *countingGen) Table(d arabdict.Dialect, root arabdict.VerbRoot, stem int, ctx *arabdict.Stem1Context) (*arabdict.ConjugationTable, error) {
	g.calls++
	return g.conj.Table(d, root, stem, ctx)
}

func newGen(t *testing.T) *countingGen {
	t.Helper()
	conj, err := arabdict.New()
	require.NoError(t, err)
	return &countingGen{conj: conj}
}

var kataba = &arabdict.Stem1Context{PastVowel: arabdict.Fatha, PresentVowel: arabdict.Dhamma}

func TestCache_ReadThrough(t *testing.T) {
	gen := newGen(t)
	store := newMemStore()
	c := New(gen, store, time.Hour, "t:", zap.NewNop())
	root := arabdict.MustRoot("ك-ت-ب")

	first, err := c.Table(context.Background(), arabdict.MSA, root, 1, kataba)
	require.NoError(t, err)
	second, err := c.Table(context.Background(), arabdict.MSA, root, 1, kataba)
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls, "second lookup is served from the store")
	key := c.Key(arabdict.MSA, root, 1, kataba)
	assert.Equal(t, "t:msa:ك-ت-ب:1:fatha/dhamma", key)
	assert.Equal(t, time.Hour, store.ttls[key])

	require.Len(t, second.Cells, len(first.Cells))
	got, ok := second.Lookup("perfect.active.3ms")
	require.True(t, ok)
	assert.Equal(t, "كَتَبَ", got.String())
	assert.Equal(t, root, second.Root)
	require.NotNil(t, second.Context)
	assert.Equal(t, *kataba, *second.Context)
}

func TestCache_StoreFailuresFallBack(t *testing.T) {
	gen := newGen(t)
	store := newMemStore()
	store.failGet = errors.New("connection refused")
	store.failSet = errors.New("connection refused")
	c := New(gen, store, time.Minute, "t:", zap.NewNop())

	tbl, err := c.Table(context.Background(), arabdict.MSA, arabdict.MustRoot("ع-ل-م"), 2, nil)
	require.NoError(t, err)
	got, ok := tbl.Lookup("perfect.active.3ms")
	require.True(t, ok)
	assert.Equal(t, "عَلَّمَ", got.String())
	assert.Equal(t, 1, gen.calls)
}

func TestCache_CorruptEntryIsRecomputed(t *testing.T) {
	gen := newGen(t)
	store := newMemStore()
	c := New(gen, store, time.Minute, "t:", zap.NewNop())
	root := arabdict.MustRoot("ع-ل-م")
	store.data[c.Key(arabdict.MSA, root, 2, nil)] = []byte("{not json")

	_, err := c.Table(context.Background(), arabdict.MSA, root, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
}

func TestCache_PassThroughWithoutStore(t *testing.T) {
	gen := newGen(t)
	c := New(gen, nil, 0, "", zap.NewNop())

	for range 2 {
		_, err := c.Table(context.Background(), arabdict.MSA, arabdict.MustRoot("ع-ل-م"), 2, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, gen.calls)
}

func TestCache_GeneratorErrorsAreNotCached(t *testing.T) {
	gen := newGen(t)
	store := newMemStore()
	c := New(gen, store, time.Minute, "t:", zap.NewNop())

	_, err := c.Table(context.Background(), arabdict.MSA, arabdict.MustRoot("ك-ت-ب"), 1, nil)
	require.ErrorIs(t, err, arabdict.ErrInvalidStem1Context)
	assert.Empty(t, store.data)
}
