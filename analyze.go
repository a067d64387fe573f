package arabdict

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// matchMode selects how generated words are compared with the surface.
type matchMode uint8

const (
	// matchStrict requires equal letters plus every mark the surface
	// carries. Marks missing on the surface match anything.
	matchStrict matchMode = iota
	// matchSkeleton compares letters only.
	matchSkeleton
)

func (m matchMode) matches(gen, surface Word) bool {
	if len(gen) != len(surface) {
		return false
	}
	for i, s := range surface {
		g := gen[i]
		if g.Letter != s.Letter {
			return false
		}
		if m == matchSkeleton {
			continue
		}
		if s.Shadda && !g.Shadda {
			return false
		}
		if s.Tashkil != TashkilNone && s.Tashkil != g.Tashkil {
			return false
		}
	}
	return true
}

// hypothesis is a candidate root and the comparison it is checked with.
type hypothesis struct {
	root VerbRoot
	mode matchMode
}

// augments may stand for affix or template letters instead of radicals.
var augments = map[Letter]bool{
	Alef: true, AlefMaksura: true, Hamza: true, Ta: true, Nun: true,
	Siin: true, Waw: true, Ya: true,
}

// infixAllophone reports whether l after prev is the assimilated ت of
// the stem 8 infix.
func infixAllophone(prev, l Letter) bool {
	switch l {
	case Tta:
		return prev == Sad || prev == Dad || prev == Tta || prev == Dha
	case Dal:
		return prev == Dal || prev == Dhal || prev == Zay
	}
	return false
}

// foldLetters returns the letters of w with every hamza seat written ء.
// آ stands for ء followed by ا.
func foldLetters(w Word) []Letter {
	out := make([]Letter, 0, len(w))
	for _, g := range w {
		switch {
		case g.Letter == AlefMadda:
			out = append(out, Hamza, Alef)
		case g.Letter.IsHamza():
			out = append(out, Hamza)
		default:
			out = append(out, g.Letter)
		}
	}
	return out
}

// suffixSkeletons returns the folded letters of every suffix of t, the
// empty suffix included.
func suffixSkeletons(t *dialectTable) [][]Letter {
	seen := map[string]bool{"": true}
	out := [][]Letter{nil}
	add := func(l []Letter) {
		if k := string(l); !seen[k] {
			seen[k] = true
			out = append(out, l)
		}
	}
	for _, a := range t.perfectSuffixes {
		add(foldLetters(a.text))
	}
	for _, m := range t.presentSuffixes {
		for _, a := range m {
			add(foldLetters(a.text))
		}
	}
	if g := t.grammar; g != nil {
		for _, m := range []map[personKey]treeSuffix{g.perfect, g.present} {
			for _, s := range m {
				add(s.letters())
			}
		}
	}
	return out
}

// cores splits the surface letters into candidate radical sequences of
// length 1 to 5: a proclitic and a suffix are cut off, then any subset of
// the augment letters is dropped.
func cores(t *dialectTable, letters []Letter) [][]Letter {
	starts := [][]Letter{letters}
	if len(letters) > 1 && slices.Contains(t.proclitics, letters[0]) {
		starts = append(starts, letters[1:])
	}
	seen := map[string]bool{}
	var out [][]Letter
	for _, s := range starts {
		for _, suf := range suffixSkeletons(t) {
			if len(suf) >= len(s) || !slices.Equal(s[len(s)-len(suf):], suf) {
				continue
			}
			for _, c := range dropAugments(s[:len(s)-len(suf)]) {
				if k := string(c); !seen[k] {
					seen[k] = true
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// maxCore is the longest core: a quadriliteral with its last radical
// written twice, as in stem 4 اِفْعَلَلَّ before a consonant suffix.
const maxCore = 5

// dropAugments returns every subsequence of s of length 1 to maxCore that
// keeps all letters which cannot be augments.
func dropAugments(s []Letter) [][]Letter {
	var optional []int
	for i, l := range s {
		if augments[l] || (i > 0 && infixAllophone(s[i-1], l)) {
			optional = append(optional, i)
		}
	}
	if len(s)-len(optional) > maxCore || len(optional) > 12 {
		return nil
	}
	var out [][]Letter
	for mask := 0; mask < 1<<len(optional); mask++ {
		if n := len(s) - popcount(mask); n < 1 || n > maxCore {
			continue
		}
		drop := make(map[int]bool, len(optional))
		for b, i := range optional {
			if mask&(1<<b) != 0 {
				drop[i] = true
			}
		}
		var c []Letter
		for i, l := range s {
			if !drop[i] {
				c = append(c, l)
			}
		}
		out = append(out, c)
	}
	return out
}

func popcount(x int) int {
	n := 0
	for ; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// rootHypotheses reads the candidate roots off one core. Weak radicals
// that rules elide or turn into long vowels are put back. Hollow,
// assimilated and doubled reconstructions are compared on the skeleton
// only.
func rootHypotheses(core []Letter, add func(matchMode, ...Letter)) {
	switch len(core) {
	case 1:
		// Two weak radicals gone: يَعِي, يُرُونَ, اِيتِ.
		a := core[0]
		add(matchStrict, Waw, a, Ya)
		add(matchStrict, Waw, a, Waw)
		add(matchStrict, Hamza, a, Ya)
		add(matchStrict, Hamza, a, Waw)
		add(matchStrict, a, Hamza, Ya)
		add(matchStrict, a, Hamza, Waw)
	case 2:
		a, b := core[0], core[1]
		if b == Alef || b == AlefMaksura {
			add(matchStrict, a, Hamza, Ya)
			add(matchStrict, a, Hamza, Waw)
			return
		}
		add(matchSkeleton, Waw, a, b)
		add(matchSkeleton, a, Waw, b)
		add(matchSkeleton, a, b, b)
		add(matchStrict, a, Ya, b)
		add(matchStrict, a, b, Waw)
		add(matchStrict, a, b, Ya)
		add(matchStrict, Hamza, a, b)
		add(matchStrict, a, Hamza, b)
	case 3:
		a, b, c := core[0], core[1], core[2]
		add(matchStrict, a, b, c)
		switch b {
		case Alef:
			add(matchSkeleton, a, Waw, c)
			add(matchSkeleton, a, Ya, c)
		case Ya:
			add(matchSkeleton, a, Waw, c)
		}
		switch c {
		case Alef, AlefMaksura:
			add(matchStrict, a, b, Waw)
			add(matchStrict, a, b, Ya)
		case Ya:
			add(matchStrict, a, b, Waw)
		case Waw:
			add(matchStrict, a, b, Ya)
		}
		if a == Dal {
			add(matchStrict, Dhal, b, c)
		}
	case 4:
		add(matchStrict, core...)
		// Stem 9 writes its doubled last radical apart before a
		// consonant suffix and in the jussive.
		if core[2] == core[3] {
			add(matchStrict, core[:3]...)
		}
	case 5:
		// Quadriliteral stem 4 does the same.
		if core[3] == core[4] {
			add(matchStrict, core[:4]...)
		}
	}
}

// hypotheses lazily yields the root hypotheses of surface as the cores
// produce them. A root is yielded once, and again only when a later core
// calls for the looser skeleton comparison.
func hypotheses(t *dialectTable, surface Word) iter.Seq[hypothesis] {
	return func(yield func(hypothesis) bool) {
		modes := map[VerbRoot]matchMode{}
		stop := false
		add := func(m matchMode, radicals ...Letter) {
			if stop {
				return
			}
			r, err := FromRadicals(radicals...)
			if err != nil {
				return
			}
			if old, ok := modes[r]; ok && m <= old {
				return
			}
			modes[r] = m
			stop = !yield(hypothesis{root: r, mode: m})
		}
		for _, c := range cores(t, foldLetters(surface)) {
			if stop {
				return
			}
			rootHypotheses(c, add)
		}
		// A suppletive paradigm need not show its radicals (تَعَا).
		if t.grammar != nil {
			for _, ir := range irregulars().suppletive() {
				add(matchStrict, ir.Root.Radicals()...)
			}
		}
	}
}

// stemsOf lists the stems a root can be conjugated in.
func stemsOf(r VerbRoot) []int {
	if r.Len() == 4 {
		return []int{1, 2, 4}
	}
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
}

// contextsOf lists the Form I contexts to try for stem.
func contextsOf(r VerbRoot, stem int) []*Stem1Context {
	if stem != 1 {
		return []*Stem1Context{nil}
	}
	choices := r.Stem1ContextChoices()
	out := make([]*Stem1Context, len(choices))
	for i := range choices {
		out[i] = &choices[i]
	}
	return out
}

// prunable reports whether the imperfect person prefix of p cannot occur
// at the start of the surface. The first singular is never pruned since
// its prefix may merge with the stem or be absent.
func prunable(p Parameters, head []Letter) bool {
	if p.Tense != Present || p.Mood == Imperative {
		return false
	}
	k := p.key()
	if k.person == First && k.numerus == Singular {
		return false
	}
	return !slices.Contains(head, prefixLetter(k))
}

type memoKey struct {
	dialect Dialect
	root    VerbRoot
	stem    int
	ctx     Stem1Context
	tense   Tense
	voice   Voice
	mood    Mood
	person  personKey
}

type memoEntry struct {
	forms EquivalenceSet
	err   error
}

// analyzer runs the forward generator as an oracle over root hypotheses.
type analyzer struct {
	log     *zap.Logger
	workers int
	// memo caches generator results across calls. nil disables it.
	memo *lru.Cache[memoKey, memoEntry]
}

func newAnalyzer(log *zap.Logger, workers, cacheSize int) (*analyzer, error) {
	a := &analyzer{log: log, workers: workers}
	if cacheSize > 0 {
		memo, err := lru.New[memoKey, memoEntry](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("analyzer cache: %w", err)
		}
		a.memo = memo
	}
	return a, nil
}

func (a *analyzer) conjugate(t *dialectTable, p Parameters) (EquivalenceSet, error) {
	if a.memo == nil {
		return conjugate(t, p)
	}
	k := memoKey{
		dialect: t.info.ID, root: p.Root, stem: p.Stem,
		tense: p.Tense, voice: p.Voice, mood: p.Mood, person: p.key(),
	}
	if p.Stem1Context != nil {
		k.ctx = *p.Stem1Context
	}
	if e, ok := a.memo.Get(k); ok {
		return e.forms, e.err
	}
	forms, err := conjugate(t, p)
	a.memo.Add(k, memoEntry{forms: forms, err: err})
	return forms, err
}

// stems returns the stems in which some cell of the root of h produces
// surface.
func (a *analyzer) stems(ctx context.Context, t *dialectTable, h hypothesis, surface Word, head []Letter) (StemSet, error) {
	var found StemSet
	for _, stem := range stemsOf(h.root) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	search:
		for _, c := range contextsOf(h.root, stem) {
			for p := range cells(Parameters{Root: h.root, Stem: stem, Stem1Context: c}) {
				if prunable(p, head) {
					continue
				}
				forms, err := a.conjugate(t, p)
				if errors.Is(err, ErrUnsupportedParameterCombination) {
					continue
				}
				if err != nil {
					return 0, err
				}
				for _, w := range forms.words {
					if h.mode.matches(w, surface) {
						found = found.Add(stem)
						break search
					}
				}
			}
		}
	}
	return found, nil
}

// analyze maps every matching root hypothesis to the stems it matched in.
func (a *analyzer) analyze(ctx context.Context, t *dialectTable, surface Word) (map[VerbRoot]StemSet, error) {
	if len(surface) == 0 {
		return nil, fmt.Errorf("%w: empty surface form", ErrMalformedWord)
	}
	start := time.Now()
	letters := foldLetters(surface)
	head := letters[:min(2, len(letters))]

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	var (
		mu  sync.Mutex
		out = map[VerbRoot]StemSet{}
		n   int
	)
	for h := range hypotheses(t, surface) {
		if gctx.Err() != nil {
			break
		}
		n++
		g.Go(func() error {
			found, err := a.stems(gctx, t, h, surface, head)
			if err != nil || found == 0 {
				return err
			}
			mu.Lock()
			out[h.root] |= found
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.log.Debug("analyzed surface form",
		zap.String("dialect", string(t.info.ID)),
		zap.String("surface", surface.String()),
		zap.Int("hypotheses", n),
		zap.Int("roots", len(out)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}
