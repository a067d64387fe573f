package arabdict

import "fmt"

// Form I nominal patterns.
var participlePatterns = struct {
	activeStem1, passiveStem1               pattern
	passiveHollowWaw, passiveHollowYa       pattern
	passiveDefectiveWaw, passiveDefectiveYa pattern
}{
	activeStem1:         mustPattern("1a ا 2i 3"),
	passiveStem1:        mustPattern("مa 1o 2u و 3"),
	passiveHollowWaw:    mustPattern("مa 1u و 3"),
	passiveHollowYa:     mustPattern("مa 1i ي 3"),
	passiveDefectiveWaw: mustPattern("مa 1o 2u و~"),
	passiveDefectiveYa:  mustPattern("مa 1o 2i ي~"),
}

func errUnsupportedParticiple(r participleRequest) error {
	return fmt.Errorf("%w: no %s participle for stem %d of %s", ErrUnsupportedParameterCombination, r.voice, r.stem, r.root)
}

// msaParticiple derives فَاعِل and مَفْعُول for stem 1 and مُ plus the
// imperfect stem for the derived stems. Every rule variant is spelled.
func msaParticiple(r participleRequest) ([]Word, error) {
	if r.stem == 9 && (r.voice == Passive || r.class.Has(Defective)) {
		return nil, errUnsupportedParticiple(r)
	}
	c := &conjugation{
		Parameters: Parameters{Root: r.root, Stem: r.stem, Stem1Context: r.ctx, Tense: Present, Voice: r.voice, Person: Third},
		class:      r.class,
		irr:        r.irr,
		participle: true,
		unmerged:   r.stem == 3,
	}
	var f form
	if r.stem == 1 && r.root.Len() == 3 {
		f = stem1Participle(r)
	} else {
		tmpl, ok := msaPatterns[templateKey{r.root.Len() == 4, r.stem, Present, r.voice}]
		if !ok && r.root.Len() == 4 && r.stem == 4 {
			tmpl, ok = msaPatterns[templateKey{true, 4, Present, Active}]
		}
		if !ok {
			return nil, errUnsupportedParticiple(r)
		}
		f = tmpl.fill(r.root, TashkilNone)
		last := f.lastRadical()
		f[last].Tashkil = TashkilNone
		f[last-1].Tashkil = Kasra
		if r.voice == Passive {
			f[last-1].Tashkil = Fatha
		}
		f = f.insert(0, letter(Mim, Dhamma))
	}
	var words []Word
	for _, v := range applyRules(c, msaRules, f) {
		words = append(words, orthography(v)...)
	}
	return words, nil
}

// stem1Participle builds the Form I participle before the shared rules
// run. Hollow and defective radicals are spelled here since the nominal
// patterns treat them differently from the verb.
func stem1Participle(r participleRequest) form {
	p := participlePatterns
	if r.voice == Active {
		f := p.activeStem1.fill(r.root, TashkilNone)
		i2, i3 := f.radicalAt(2), f.radicalAt(3)
		switch {
		case r.class.Has(Hollow) && r.root.R(3) == Hamza:
			f[i2] = slot{VocalizedGrapheme: VocalizedGrapheme{Letter: Hamza, Tashkil: Kasratan}, radical: 2}
			f = f.remove(i3)
		case r.class.Has(Hollow):
			f[i2].Letter = Hamza
		case r.class.Has(Defective):
			f[i2].Tashkil = Kasratan
			f = f.remove(i3)
		}
		return f
	}
	switch {
	case r.class.Has(Hollow) && r.root.R(2) == Waw:
		return p.passiveHollowWaw.fill(r.root, TashkilNone)
	case r.class.Has(Hollow):
		return p.passiveHollowYa.fill(r.root, TashkilNone)
	case r.class.Has(Defective) && r.ctx != nil && r.ctx.PresentVowel == Dhamma:
		return p.passiveDefectiveWaw.fill(r.root, TashkilNone)
	case r.class.Has(Defective):
		return p.passiveDefectiveYa.fill(r.root, TashkilNone)
	}
	return p.passiveStem1.fill(r.root, TashkilNone)
}

// participle validates the request and runs the dialect strategy. The
// result holds every spelling, like a conjugation cell.
func participle(t *dialectTable, root VerbRoot, stem int, voice Voice, ctx *Stem1Context) (EquivalenceSet, error) {
	if root.IsZero() {
		return EquivalenceSet{}, fmt.Errorf("%w: missing root", ErrInvalidRootRadicals)
	}
	if stem < 1 || stem > 10 || (root.Len() == 4 && stem != 1 && stem != 2 && stem != 4) {
		return EquivalenceSet{}, fmt.Errorf("%w: stem %d", ErrUnsupportedParameterCombination, stem)
	}
	if err := checkContext(root, stem, ctx); err != nil {
		return EquivalenceSet{}, err
	}
	if t.participle == nil {
		return EquivalenceSet{}, fmt.Errorf("%w: %s has no participles", ErrUnsupportedParameterCombination, t.info.Name)
	}
	req := participleRequest{root: root, class: root.Classify(), stem: stem, voice: voice, ctx: ctx}
	if ir, ok := irregulars().lookup(root); ok {
		req.irr = ir
	}
	words, err := t.participle(req)
	if err != nil {
		return EquivalenceSet{}, err
	}
	if len(words) == 0 {
		return EquivalenceSet{}, errUnsupportedParticiple(req)
	}
	return newEquivalenceSet(words...), nil
}
