package arabdict

// Lebanese is written with rule trees. There is no dual, no jussive and no
// passive; the feminine plural is the masculine one.

func perfect(c *conjugation) bool { return c.Tense == Perfect }
func present(c *conjugation) bool { return c.Tense == Present }
func imperative(c *conjugation) bool { return c.Tense == Present && c.Mood == Imperative }
func subjunctive(c *conjugation) bool {
	return c.Tense == Present && c.Mood == Subjunctive
}
func third(c *conjugation) bool { return c.Person == Third }

func isKey(k personKey) func(c *conjugation) bool {
	return func(c *conjugation) bool { return c.key() == k }
}

var (
	is3ms = isKey(personKey{Third, Male, Singular})
	is3fs = isKey(personKey{Third, Female, Singular})
	is2ms = isKey(personKey{Second, Male, Singular})
)

func is3p(c *conjugation) bool { return c.Person == Third && c.Numerus == Plural }

func firstSingular(c *conjugation) bool {
	return c.Person == First && c.Numerus == Singular
}

// pluralSuffix reports whether the imperfect ends in وا.
func pluralSuffix(c *conjugation) bool {
	return c.Numerus == Plural && c.Person != First
}

// vowelSuffix reports whether the imperfect ends in a long vowel.
func vowelSuffix(c *conjugation) bool {
	return present(c) && (c.key() == personKey{Second, Female, Singular} || pluralSuffix(c))
}

func pastKasra(c *conjugation) bool {
	return c.Stem1Context != nil && c.Stem1Context.PastVowel == Kasra
}

func all(conds ...func(*conjugation) bool) func(*conjugation) bool {
	return func(c *conjugation) bool {
		for _, f := range conds {
			if !f(c) {
				return false
			}
		}
		return true
	}
}

func not(f func(*conjugation) bool) func(*conjugation) bool {
	return func(c *conjugation) bool { return !f(c) }
}

// vowels is shorthand for a vowel list.
func vowels(v ...vowel) []vowel { return v }

// byPerson picks the last stem vowel of a weak perfect.
func byPerson(head []vowel, v3ms, v3fs, v3p, other vowel) []treeNode {
	with := func(v vowel) []vowel { return append(append([]vowel(nil), head...), v) }
	return []treeNode{
		{when: is3ms, vowels: with(v3ms)},
		{when: is3fs, vowels: with(v3fs)},
		{when: is3p, vowels: with(v3p)},
		{vowels: with(other)},
	}
}

var r12 = []symbol{rad(1), rad(2)}

var lebaneseTrees = map[treeKey]*treeNode{
	{1, shapeSound}: {symbols: radicalSeq(3), children: []treeNode{
		{when: perfect, vowels: vowels(vowelShortA, vowelShortA)},
		{when: all(imperative, vowelSuffix), vowels: vowels(vowelSukun, vowelShortI)},
		{when: imperative, vowels: vowels(vowelSukun, vowelLexicalLong)},
		{when: vowelSuffix, prefix: vowelShortI, vowels: vowels(vowelSukun, vowelSukun)},
		{prefix: vowelShortI, vowels: vowels(vowelSukun, vowelLexical)},
	}},
	{1, shapeDefective}: {symbols: []symbol{rad(1), rad(2), lit(Ya)}, children: []treeNode{
		{when: all(pastKasra, present, not(imperative), not(vowelSuffix)), prefix: vowelShortI, symbols: r12, vowels: vowels(vowelSukun, vowelBrokenA)},
		{when: all(perfect, is3ms), symbols: r12, vowels: vowels(vowelShortI, vowelLongI)},
		{when: all(perfect, is3fs), vowels: vowels(vowelShortI, vowelSukun, vowelShortI)},
		{when: all(perfect, is3p), vowels: vowels(vowelShortI, vowelSukun)},
		{when: perfect, symbols: r12, vowels: vowels(vowelSukun, vowelLongI)},
		{when: all(imperative, vowelSuffix), symbols: r12, vowels: vowels(vowelSukun)},
		{when: imperative, symbols: r12, vowels: vowels(vowelSukun, vowelLongI)},
		{when: vowelSuffix, prefix: vowelShortI, symbols: r12, vowels: vowels(vowelSukun)},
		{prefix: vowelShortI, first: firstAlef, symbols: r12, vowels: vowels(vowelSukun, vowelLongI)},
	}},
	{1, shapeHollow}: {symbols: []symbol{rad(1), rad(3)}, children: []treeNode{
		{when: all(perfect, third), vowels: vowels(vowelLongA)},
		{when: perfect, vowels: vowels(vowelClosed)},
		{prefix: vowelSukun, vowels: vowels(vowelLexicalLong)},
	}},
	{1, shapeHamzaR1}: {symbols: radicalSeq(3), children: []treeNode{
		{when: perfect, vowels: vowels(vowelShortA, vowelShortA)},
		{when: all(imperative, vowelSuffix), vowels: vowels(vowelSukun, vowelShortU)},
		{when: imperative, vowels: vowels(vowelSukun, vowelLongU)},
		{when: vowelSuffix, prefix: vowelShortU, vowels: vowels(vowelSukun, vowelSukun)},
		{prefix: vowelShortU, vowels: vowels(vowelSukun, vowelShortU)},
	}},
	{1, shapeContracted}: {symbols: radicalSeq(3), children: []treeNode{
		{when: perfect, vowels: vowels(vowelShortA, vowelShortA)},
		{when: all(imperative, vowelSuffix), symbols: []symbol{rad(2), rad(3)}, vowels: vowels(vowelShortI)},
		{when: imperative, symbols: []symbol{rad(2), rad(3)}, vowels: vowels(vowelShortU)},
		{when: vowelSuffix, prefix: vowelLongA, symbols: []symbol{rad(2), rad(3)}, vowels: vowels(vowelSukun)},
		{when: all(firstSingular, subjunctive), prefix: vowelShortA, vowels: vowels(vowelSukun, vowelShortU)},
		{prefix: vowelLongA, symbols: []symbol{rad(2), rad(3)}, vowels: vowels(vowelShortU)},
	}},
	{1, shapeQuadriliteral}: {symbols: radicalSeq(4), children: []treeNode{
		{when: perfect, vowels: vowels(vowelShortA, vowelSukun, vowelShortA)},
		{when: vowelSuffix, prefix: vowelSukun, vowels: vowels(vowelShortA, vowelSukun, vowelSukun)},
		{prefix: vowelSukun, vowels: vowels(vowelShortA, vowelSukun, vowelShortI)},
	}},
	{1, shapeDoubled}: {symbols: radicalSeq(3), children: []treeNode{
		{when: all(perfect, third), vowels: vowels(vowelShortA, vowelSukun)},
		{when: perfect, vowels: vowels(vowelShortA, vowelSukun, vowelDiphthong)},
		{prefix: vowelSukun, vowels: vowels(vowelLexical, vowelSukun)},
	}},
	{1, shapeSuppletive}: {children: []treeNode{
		{when: perfect, children: []treeNode{
			{when: is3ms, symbols: []symbol{lit(Hamza), rad(1)}, vowels: vowels(vowelShortI, vowelLongA)},
			{when: is3fs, symbols: []symbol{lit(Hamza), rad(1)}, vowels: vowels(vowelShortI, vowelShortI)},
			{when: is3p, symbols: []symbol{lit(Hamza), rad(1), lit(Waw)}, vowels: vowels(vowelShortI, vowelShortI, vowelBare)},
			{symbols: []symbol{rad(1)}, vowels: vowels(vowelLongI)},
		}},
		{when: imperative, symbols: []symbol{lit(Ta), lit(Ain)}, children: []treeNode{
			{when: vowelSuffix, vowels: vowels(vowelShortA)},
			{vowels: vowels(vowelShortA, vowelLongA)},
		}},
		{when: pluralSuffix, prefix: vowelShortI, symbols: []symbol{rad(1), lit(Waw)}, vowels: vowels(vowelShortI, vowelBare)},
		{prefix: vowelShortI, first: firstHamza, symbols: []symbol{rad(1)}, vowels: vowels(vowelLongI)},
	}},

	{2, shapeSound}: {symbols: []symbol{rad(1), rad(2), rad(2), rad(3)}, children: []treeNode{
		{when: perfect, vowels: vowels(vowelShortA, vowelSukun, vowelShortA)},
		{when: vowelSuffix, prefix: vowelSukun, vowels: vowels(vowelShortA, vowelSukun, vowelSukun)},
		{prefix: vowelSukun, vowels: vowels(vowelShortA, vowelSukun, vowelShortI)},
	}},
	{2, shapeDefective}: {symbols: []symbol{rad(1), rad(2), rad(2)}, children: []treeNode{
		{when: perfect, children: byPerson(vowels(vowelShortA, vowelSukun), vowelBrokenA, vowelShortI, vowelLongU, vowelDiphthong)},
		{when: pluralSuffix, prefix: vowelSukun, vowels: vowels(vowelShortA, vowelSukun, vowelLongU)},
		{prefix: vowelSukun, vowels: vowels(vowelShortA, vowelSukun, vowelLongI)},
	}},
	{2, shapeQuadriliteral}: {symbols: []symbol{lit(Ta), rad(1), rad(2), rad(3), rad(4)}, children: []treeNode{
		{when: perfect, vowels: vowels(vowelSukun, vowelShortA, vowelSukun, vowelShortA)},
		{when: imperative, symbols: radicalSeq(4), children: []treeNode{
			{when: is2ms, vowels: vowels(vowelShortA, vowelSukun, vowelShortI)},
			{vowels: vowels(vowelShortA, vowelSukun, vowelSukun)},
		}},
		{prefix: vowelShortI, vowels: vowels(vowelSukun, vowelShortA, vowelSukun, vowelShortA)},
	}},

	{3, shapeSound}: {symbols: radicalSeq(3), children: []treeNode{
		{when: perfect, vowels: vowels(vowelLongA, vowelShortA)},
		{when: vowelSuffix, prefix: vowelSukun, vowels: vowels(vowelLongA, vowelSukun)},
		{prefix: vowelSukun, vowels: vowels(vowelLongA, vowelShortI)},
	}},

	{4, shapeSound}: {children: []treeNode{
		{when: perfect, symbols: []symbol{lit(Hamza), rad(1), rad(2), rad(3)}, vowels: vowels(vowelShortA, vowelSukun, vowelShortA)},
		{prefix: vowelShortI, symbols: radicalSeq(3), children: []treeNode{
			{when: all(imperative, vowelSuffix), vowels: vowels(vowelSukun, vowelShortI)},
			{when: imperative, vowels: vowels(vowelSukun, vowelLongU)},
			{when: vowelSuffix, vowels: vowels(vowelShortI, vowelSukun)},
			{vowels: vowels(vowelSukun, vowelShortU)},
		}},
	}},

	{5, shapeSound}: {symbols: []symbol{lit(Ta), rad(1), rad(2), rad(2), rad(3)}, vowels: vowels(vowelSukun, vowelShortA, vowelSukun, vowelShortA), children: []treeNode{
		{when: present, prefix: vowelShortI},
	}},
	{5, shapeDefective}: {symbols: []symbol{lit(Ta), rad(1), rad(2), rad(2)}, children: []treeNode{
		{when: perfect, children: byPerson(vowels(vowelSukun, vowelShortA, vowelSukun), vowelBrokenA, vowelShortI, vowelLongU, vowelDiphthong)},
		{when: pluralSuffix, prefix: vowelShortI, vowels: vowels(vowelSukun, vowelShortA, vowelSukun, vowelLongU)},
		{when: vowelSuffix, prefix: vowelShortI, vowels: vowels(vowelSukun, vowelShortA, vowelSukun, vowelLongI)},
		{prefix: vowelShortI, vowels: vowels(vowelSukun, vowelShortA, vowelSukun, vowelBrokenA)},
	}},

	{6, shapeSound}: {symbols: []symbol{lit(Ta), rad(1), rad(2), rad(3)}, vowels: vowels(vowelSukun, vowelLongA, vowelShortA), children: []treeNode{
		{when: present, prefix: vowelShortI},
	}},
	{6, shapeDefective}: {symbols: []symbol{lit(Ta), rad(1), rad(2)}, children: []treeNode{
		{when: perfect, children: byPerson(vowels(vowelSukun, vowelLongA), vowelBrokenA, vowelShortI, vowelLongU, vowelDiphthong)},
		{when: pluralSuffix, prefix: vowelShortI, vowels: vowels(vowelSukun, vowelLongA, vowelLongU)},
		{when: vowelSuffix, prefix: vowelShortI, vowels: vowels(vowelSukun, vowelLongA, vowelLongI)},
		{prefix: vowelShortI, vowels: vowels(vowelSukun, vowelLongA, vowelBrokenA)},
	}},

	{8, shapeSound}: {symbols: []symbol{rad(1), lit(Ta), rad(2), rad(3)}, children: []treeNode{
		{when: perfect, vowels: vowels(vowelSukun, vowelShortA, vowelShortA)},
		{when: vowelSuffix, prefix: vowelShortI, vowels: vowels(vowelSukun, vowelShortI, vowelSukun)},
		{prefix: vowelShortI, vowels: vowels(vowelSukun, vowelShortI, vowelShortI)},
	}},
	{8, shapeHollow}: {symbols: []symbol{rad(1), lit(Ta), rad(3)}, children: []treeNode{
		{when: all(perfect, third), vowels: vowels(vowelSukun, vowelLongA)},
		{when: perfect, vowels: vowels(vowelSukun, vowelShortA)},
		{prefix: vowelShortI, vowels: vowels(vowelSukun, vowelLongA)},
	}},

	{9, shapeSound}: {symbols: []symbol{rad(1), rad(2), rad(3), rad(3)}, children: []treeNode{
		{when: all(perfect, third), vowels: vowels(vowelSukun, vowelShortA, vowelSukun)},
		{when: perfect, vowels: vowels(vowelSukun, vowelShortA, vowelSukun, vowelDiphthong)},
		{prefix: vowelShortI, vowels: vowels(vowelSukun, vowelShortA, vowelSukun)},
	}},
}

// lebanesePlural gives the second and third feminine plural the masculine
// ending.
func lebanesePlural(m map[personKey]treeSuffix) map[personKey]treeSuffix {
	for k, s := range m {
		if k.numerus == Plural && k.person != First {
			m[personKey{k.person, Female, Plural}] = s
		}
	}
	return m
}

var lebaneseGrammar = &treeGrammar{
	trees: lebaneseTrees,
	soundFallback: map[shape][]int{
		shapeHollow:      {2, 3, 5, 6},
		shapeDoubled:     {2, 5},
		shapeHamzaR1:     {2, 3, 5, 6},
		shapeAssimilated: {2, 3, 5, 6},
	},
	perfect: lebanesePlural(map[personKey]treeSuffix{
		{Third, Male, Singular}:    {prev: vowelSukun},
		{Third, Female, Singular}:  {prev: vowelShortI, items: []item{{Ta, vowelSukun}}},
		{Second, Male, Singular}:   {prev: vowelShortI, items: []item{{Ta, vowelSukun}}},
		{Second, Female, Singular}: {prev: vowelSukun, items: []item{{Ta, vowelLongI}}},
		{First, Male, Singular}:    {prev: vowelShortI, items: []item{{Ta, vowelSukun}}},
		{Third, Male, Plural}:      {prev: vowelLongU, alef: true},
		{Second, Male, Plural}:     {prev: vowelSukun, items: []item{{Ta, vowelLongU}}, alef: true},
		{First, Male, Plural}:      {prev: vowelSukun, items: []item{{Nun, vowelLongA}}},
	}),
	present: lebanesePlural(map[personKey]treeSuffix{
		{Third, Male, Singular}:    {prev: vowelSukun},
		{Third, Female, Singular}:  {prev: vowelSukun},
		{Second, Male, Singular}:   {prev: vowelSukun},
		{Second, Female, Singular}: {prev: vowelLongI},
		{First, Male, Singular}:    {prev: vowelSukun},
		{Third, Male, Plural}:      {prev: vowelLongU, alef: true},
		{Second, Male, Plural}:     {prev: vowelLongU, alef: true},
		{First, Male, Plural}:      {prev: vowelSukun},
	}),
	prefix: lebanesePrefix,
	spell:  lebaneseOrthography,
}

var lebaneseTable = &dialectTable{
	info: Info{
		ID:         Lebanese,
		Name:       "Lebanese Arabic",
		ISO6393:    "apc",
		Glottocode: "stan1323",
	},
	grammar:    lebaneseGrammar,
	supports:   lebaneseSupports,
	participle: lebaneseParticiple,
	proclitics: []Letter{Ba, Mim},
}

func lebaneseSupports(p Parameters, class RootClass) bool {
	if p.Voice != Active || p.Numerus == Dual || p.Mood == Jussive {
		return false
	}
	var irr *irregular
	if ir, ok := irregulars().lookup(p.Root); ok {
		irr = ir
	}
	return lebaneseGrammar.tree(p.Stem, shapeOf(class, irr)) != nil
}

// biVowel is the vowel of the indicative ب before a prefix with vowel v.
func biVowel(v vowel) vowel {
	if v == vowelSukun {
		return vowelShortI
	}
	return vowelSukun
}

// lebanesePrefix returns the subjunctive person prefix and, in the
// indicative, the proclitic ب (م before the first plural).
func lebanesePrefix(c *conjugation, pv, following vowel, first firstPerson) []item {
	if c.Tense == Perfect || c.Mood == Imperative {
		return nil
	}
	k := c.key()
	subj := func() []item {
		switch {
		case k.person == First && k.numerus == Plural:
			return []item{{Nun, pv}}
		case k.person == First:
			switch {
			case first == firstAlef:
				return []item{{Alef, pv}}
			case first == firstHamza || following == vowelSukun:
				return []item{{Hamza, pv}}
			}
			return nil
		}
		return []item{{prefixLetter(k), pv}}
	}
	if c.Mood == Subjunctive {
		return subj()
	}
	bi := biVowel(pv)
	switch {
	case k.person == First && k.numerus == Singular:
		return []item{{Ba, pv}}
	case k.person == First:
		return append([]item{{Mim, bi}}, subj()...)
	case prefixLetter(k) == Ya && bi == vowelShortI:
		// بِ and a silent ي fuse into بِي.
		return []item{{Ba, vowelLongI}}
	}
	return append([]item{{Ba, bi}}, subj()...)
}

// lebaneseOrthography merges geminates across the prefix and seats the
// hamzas. Matres are written by the trees, so none are normalized.
func lebaneseOrthography(f form) []Word {
	w := mergeGeminates(f)
	w = mergeInitialHamza(w)
	return seatHamzas(w)
}

// mergeGeminates writes a consonant with sukun followed by the same
// consonant as one letter with shadda. At the start of the word the pair
// only merges before a long vowel (بِّيعْ but بْبَلِّشْ).
func mergeGeminates(f form) Word {
	out := make(Word, 0, len(f))
	for i := 0; i < len(f); i++ {
		g := f[i].VocalizedGrapheme
		if i+1 < len(f) && g.Tashkil == Sukun && !g.Shadda && !g.isMater() {
			n := f[i+1].VocalizedGrapheme
			if n.Letter == g.Letter && !n.Shadda && !n.isMater() {
				long := i+2 < len(f) && f[i+2].isMater()
				if len(out) > 0 || long {
					n.Shadda = true
					out = append(out, n)
					i++
					continue
				}
			}
		}
		out = append(out, g)
	}
	return out
}

// lebaneseParticiple derives the active participle.
func lebaneseParticiple(r participleRequest) ([]Word, error) {
	if r.voice != Active {
		return nil, errUnsupportedParticiple(r)
	}
	items, ok := lebaneseParticipleItems(r)
	if !ok {
		return nil, errUnsupportedParticiple(r)
	}
	return lebaneseGrammar.spellItems(items), nil
}

func lebaneseParticipleItems(r participleRequest) ([]item, bool) {
	R := r.root.R
	s := shapeOf(r.class, r.irr)
	if r.root.Len() == 4 {
		switch r.stem {
		case 1:
			return []item{{Mim, vowelSukun}, {R(1), vowelShortA}, {R(2), vowelSukun}, {R(3), vowelShortI}, {R(4), vowelBare}}, true
		case 2:
			return []item{{Mim, vowelShortI}, {Ta, vowelSukun}, {R(1), vowelShortA}, {R(2), vowelSukun}, {R(3), vowelShortA}, {R(4), vowelSukun}}, true
		}
		return nil, false
	}
	mit := []item{{Mim, vowelShortI}, {Ta, vowelSukun}}
	switch {
	case r.stem == 1 && s == shapeSuppletive:
		return []item{{R(1), vowelLongA}, {Ya, vowelBare}}, true
	case r.stem == 1 && s == shapeHollow:
		return []item{{R(1), vowelLongA}, {Ya, vowelShortI}, {R(3), vowelBare}}, true
	case r.stem == 1 && s == shapeDefective:
		return []item{{R(1), vowelLongA}, {R(2), vowelLongI}}, true
	case r.stem == 1 && s == shapeAssimilated:
		return nil, false
	case r.stem == 1:
		return []item{{R(1), vowelLongA}, {R(2), vowelShortI}, {R(3), vowelBare}}, true
	case r.stem == 2 && s == shapeDefective:
		return []item{{Mim, vowelSukun}, {R(1), vowelShortA}, {R(2), vowelSukun}, {R(2), vowelLongI}}, true
	case r.stem == 2:
		return []item{{Mim, vowelSukun}, {R(1), vowelShortA}, {R(2), vowelSukun}, {R(2), vowelShortI}, {R(3), vowelBare}}, true
	case r.stem == 3 && s != shapeDefective:
		return []item{{Mim, vowelSukun}, {R(1), vowelLongA}, {R(2), vowelShortI}, {R(3), vowelBare}}, true
	case r.stem == 4 && s == shapeSound:
		return []item{{Mim, vowelShortU}, {R(1), vowelSukun}, {R(2), vowelShortI}, {R(3), vowelBare}}, true
	case r.stem == 5 && s == shapeDefective:
		return append(mit, item{R(1), vowelShortA}, item{R(2), vowelSukun}, item{R(2), vowelLongI}), true
	case r.stem == 5:
		return append(mit, item{R(1), vowelShortA}, item{R(2), vowelSukun}, item{R(2), vowelShortA}, item{R(3), vowelSukun}), true
	case r.stem == 6 && s == shapeDefective:
		return append(mit, item{R(1), vowelLongA}, item{R(2), vowelLongI}), true
	case r.stem == 6:
		return append(mit, item{R(1), vowelLongA}, item{R(2), vowelShortA}, item{R(3), vowelSukun}), true
	case r.stem == 8 && s == shapeHollow:
		return []item{{Mim, vowelShortI}, {R(1), vowelSukun}, {Ta, vowelLongA}, {R(3), vowelSukun}}, true
	case r.stem == 8 && s == shapeSound:
		return []item{{Mim, vowelShortI}, {R(1), vowelSukun}, {Ta, vowelShortI}, {R(2), vowelShortI}, {R(3), vowelBare}}, true
	case r.stem == 9 && s == shapeSound:
		return []item{{Mim, vowelShortI}, {R(1), vowelSukun}, {R(2), vowelShortA}, {R(3), vowelSukun}, {R(3), vowelBare}}, true
	}
	return nil, false
}
