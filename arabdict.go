// Package arabdict conjugates Arabic verbs and analyzes conjugated forms.
// It covers Modern Standard Arabic and Lebanese Arabic: given a root and a
// parameter tuple it produces every admissible fully vocalized spelling,
// and given a vocalized form it reports the roots and stems that produce
// it.
package arabdict

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// DefaultCacheSize is the number of generator results the analyzer keeps.
const DefaultCacheSize = 1 << 14

// Conjugator is the entry point of the package. It is safe for concurrent
// use.
type Conjugator struct {
	log *zap.Logger

	// workers bounds the goroutines of one analysis.
	workers int

	// cacheSize is the capacity of the analyzer memo, 0 to disable it.
	cacheSize int

	analyzer *analyzer
}

// Option configures a Conjugator.
type Option func(*Conjugator) error

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Conjugator) error {
		if l == nil {
			return errors.New("nil logger")
		}
		c.log = l
		return nil
	}
}

// WithWorkers bounds the parallelism of AnalyzeConjugation.
func WithWorkers(n int) Option {
	return func(c *Conjugator) error {
		if n < 1 {
			return fmt.Errorf("workers must be positive, got %d", n)
		}
		c.workers = n
		return nil
	}
}

// WithCacheSize sets how many generator results AnalyzeConjugation
// memoizes across calls. 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(c *Conjugator) error {
		if n < 0 {
			return fmt.Errorf("cache size must not be negative, got %d", n)
		}
		c.cacheSize = n
		return nil
	}
}

// New returns a Conjugator. The rule tables are shared by all instances.
func New(opts ...Option) (*Conjugator, error) {
	c := &Conjugator{
		log:       zap.NewNop(),
		workers:   runtime.GOMAXPROCS(0),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("arabdict option: %w", err)
		}
	}
	a, err := newAnalyzer(c.log.Named("analyzer"), c.workers, c.cacheSize)
	if err != nil {
		return nil, err
	}
	c.analyzer = a
	c.log.Debug("conjugator ready",
		zap.Int("workers", c.workers),
		zap.Int("cache_size", c.cacheSize),
		zap.Int("irregular_roots", len(irregulars())),
	)
	return c, nil
}

// Conjugate returns the spellings of the cell p selects in dialect d.
func (c *Conjugator) Conjugate(d Dialect, p Parameters) (EquivalenceSet, error) {
	t, err := tableFor(d)
	if err != nil {
		return EquivalenceSet{}, err
	}
	return conjugate(t, p)
}

// ConjugateParticiple returns the spellings of the active or passive
// participle of a verb. ctx is required for stem 1 and must be nil
// otherwise.
func (c *Conjugator) ConjugateParticiple(d Dialect, root VerbRoot, stem int, voice Voice, ctx *Stem1Context) (EquivalenceSet, error) {
	t, err := tableFor(d)
	if err != nil {
		return EquivalenceSet{}, err
	}
	return participle(t, root, stem, voice, ctx)
}

// ConjugateVerbalNoun returns the verbal nouns of a derived stem in Modern
// Standard Arabic.
func (c *Conjugator) ConjugateVerbalNoun(root VerbRoot, stem int) (EquivalenceSet, error) {
	return verbalNoun(root, stem)
}

// Table returns every cell dialect d defines for the verb.
func (c *Conjugator) Table(d Dialect, root VerbRoot, stem int, ctx *Stem1Context) (*ConjugationTable, error) {
	t, err := tableFor(d)
	if err != nil {
		return nil, err
	}
	return table(t, root, stem, ctx)
}

// AnalyzeConjugation reports every root and stem whose conjugation in
// dialect d contains surface. Marks missing from surface match any mark.
func (c *Conjugator) AnalyzeConjugation(ctx context.Context, d Dialect, surface Word) (map[VerbRoot]StemSet, error) {
	t, err := tableFor(d)
	if err != nil {
		return nil, err
	}
	return c.analyzer.analyze(ctx, t, surface)
}
