package arabdict

// hollowStems are the stems whose hollow second radical turns into a
// vowel. The others keep it as a consonant.
var hollowStems = map[int]bool{1: true, 4: true, 7: true, 8: true, 10: true}

// ruleIrregular applies the per-root overrides of the irregular table.
func ruleIrregular(c *conjugation, f form) []form {
	if c.irr == nil {
		return []form{f}
	}
	f = f.clone()
	if c.irr.ImperativeDropsR1 && c.Stem == 1 && c.Mood == Imperative && !c.participle {
		if i := f.radicalAt(1); i >= 0 {
			f = f.remove(i)
		}
	}
	if c.irr.dropsR2(c) {
		i1, i2 := f.radicalAt(1), f.radicalAt(2)
		if i1 >= 0 && i2 == i1+1 {
			f[i1].Tashkil = f[i2].Tashkil
			f = f.remove(i2)
		}
	}
	return []form{f}
}

// ruleInfix assimilates the ت infix of stem 8 to the first radical.
func ruleInfix(c *conjugation, f form) []form {
	if c.Stem != 8 || c.Root.Len() != 3 {
		return []form{f}
	}
	i1 := f.radicalAt(1)
	if i1 < 0 || i1+1 >= len(f) || f[i1+1].radical != 0 || f[i1+1].Letter != Ta {
		return []form{f}
	}
	f = f.clone()
	switch r1 := f[i1].Letter; {
	case r1 == Sad || r1 == Dad || r1 == Tta || r1 == Dha:
		f[i1+1].Letter = Tta
	case r1 == Dal || r1 == Dhal || r1 == Zay:
		f[i1+1].Letter = Dal
		if r1 == Dhal {
			f[i1].Letter = Dal
		}
	case r1.IsWeak() || (c.irr != nil && c.irr.Stem8AssimilatesR1):
		f[i1].Letter = Ta
	}
	return []form{f}
}

// ruleAssimilated drops an initial و in the Form I active imperfect.
func ruleAssimilated(c *conjugation, f form) []form {
	if c.Stem != 1 || c.Tense != Present || c.Voice != Active || c.participle {
		return []form{f}
	}
	if !c.class.Has(Assimilated) || c.class.Has(Doubled) || c.Root.R(1) != Waw {
		return []form{f}
	}
	if c.Stem1Context != nil && c.Stem1Context.SoundOverride {
		return []form{f}
	}
	i := f.radicalAt(1)
	if i < 0 {
		return []form{f}
	}
	return []form{f.remove(i)}
}

// ruleHollow turns a weak second radical into a long vowel before a
// vowel and a short one before sukun.
func ruleHollow(c *conjugation, f form) []form {
	if !c.class.Has(Hollow) || !hollowStems[c.Stem] || (c.participle && c.Stem == 1) {
		return []form{f}
	}
	i2, i3 := f.radicalAt(2), f.radicalAt(3)
	if i2 < 1 || i3 != i2+1 {
		return []form{f}
	}
	open := f[i3].Tashkil != Sukun
	var m Tashkil
	switch {
	case (c.Stem == 7 || c.Stem == 8) && !(c.Tense == Perfect && c.Voice == Passive):
		m = Fatha
	case c.Stem == 1 && c.Tense == Perfect && c.Voice == Active:
		m = Fatha
		if !open {
			m = closedPastVowel(c)
		}
	default:
		m = f[i2].Tashkil
	}
	f = f.clone()
	f[i2-1].Tashkil = m
	f = f.remove(i2)
	if open {
		f = f.insert(i2, mater(m.mater()))
	}
	return []form{f}
}

// closedPastVowel is the vowel of a Form I hollow perfect before a
// consonant suffix: the past vowel, or for fatha verbs the vowel matching
// the weak radical.
func closedPastVowel(c *conjugation) Tashkil {
	v := c.Stem1Context.PastVowel
	if v != Fatha {
		return v
	}
	if c.Root.R(2) == Ya {
		return Kasra
	}
	return Dhamma
}

// ruleDefective spells a weak third radical.
func ruleDefective(c *conjugation, f form) []form {
	if !c.class.Has(Defective) || c.Root.Len() != 3 {
		return []form{f}
	}
	i3 := f.radicalAt(3)
	if i3 < 1 {
		return []form{f}
	}
	f = f.clone()
	if c.participle {
		if c.Stem == 1 {
			return []form{f}
		}
		return []form{defectiveParticiple(c, f, i3)}
	}
	prev := i3 - 1
	t, p := f[prev].Tashkil, f[i3].Tashkil
	empty := i3 == len(f)-1
	s := f.suffixLetter()

	switch {
	case c.Stem == 1 && c.Tense == Perfect && c.Voice == Active && t == Fatha:
		f[i3].Letter = c.Root.R(3)
	case t == Dhamma:
		f[i3].Letter = Waw
	default:
		f[i3].Letter = Ya
	}
	final := AlefMaksura
	if f[i3].Letter == Waw || f[prev].Letter == Ya {
		final = Alef
	}
	asMater := func() { f[i3].Tashkil = TashkilNone }
	dropWeak := func(v Tashkil) {
		f = f.remove(i3)
		if v != TashkilNone {
			f[prev].Tashkil = v
		}
	}
	dropBeforeSuffix := func() {
		f = f.remove(i3)
		f[i3].Tashkil = Sukun
	}

	switch {
	case c.Tense == Perfect && t == Fatha:
		switch {
		case empty:
			f[i3].Letter = final
			asMater()
		case s == Ta && p == Fatha:
			dropWeak(TashkilNone)
		case s == Waw:
			dropBeforeSuffix()
		case s == Alef:
			f[i3].Tashkil = Fatha
		}
	case c.Tense == Perfect:
		switch {
		case s == Waw:
			dropWeak(Dhamma)
		case p == Sukun:
			asMater()
		}
	case t == Fatha:
		switch {
		case empty && p == Sukun:
			dropWeak(TashkilNone)
		case empty:
			f[i3].Letter = final
			asMater()
		case s == Ya || s == Waw:
			dropBeforeSuffix()
		}
	default:
		switch {
		case empty && p == Dhamma:
			asMater()
		case empty && p == Sukun:
			dropWeak(TashkilNone)
		case s == Ya:
			dropWeak(Kasra)
		case s == Waw:
			dropWeak(Dhamma)
		case s == Nun:
			asMater()
		}
	}
	return []form{f}
}

// defectiveParticiple spells the weak third radical of a derived-stem
// participle: tanween kasra in the active, alif maqsura in the passive.
func defectiveParticiple(c *conjugation, f form, i3 int) form {
	if c.Voice == Active {
		f[i3-1].Tashkil = Kasratan
		return f.remove(i3)
	}
	f[i3-1].Tashkil = Fathatan
	f[i3] = slot{VocalizedGrapheme: VocalizedGrapheme{Letter: AlefMaksura}, radical: 3}
	return f
}

// ruleDoubled merges identical final radicals. Before a vowel they merge;
// in the jussive with no suffix three spellings are attested.
func ruleDoubled(c *conjugation, f form) []form {
	quad4 := c.Root.Len() == 4 && c.Stem == 4
	if !c.class.Has(Doubled) && c.Stem != 9 && !quad4 {
		return []form{f}
	}
	cIdx := f.lastRadical()
	b := cIdx - 1
	if b < 0 || f[b].radical == 0 || f[b].Letter != f[cIdx].Letter || f[b].Shadda || f[cIdx].Shadda {
		return []form{f}
	}
	if c.unmerged {
		return []form{f}
	}
	merge := func(final Tashkil) form {
		g := f.clone()
		if a := b - 1; a >= 0 && g[a].Tashkil == Sukun {
			g[a].Tashkil = g[b].Tashkil
		}
		g[cIdx].Shadda = true
		if final != TashkilNone {
			g[cIdx].Tashkil = final
		}
		return g.remove(b)
	}
	if f[cIdx].Tashkil != Sukun {
		if (c.Stem == 3 || c.Stem == 6) && !c.participle {
			if c.Tense == Perfect && c.Voice == Passive {
				return []form{f}
			}
			return []form{merge(TashkilNone), f}
		}
		return []form{merge(TashkilNone)}
	}
	if !c.jussive() || cIdx != len(f)-1 {
		return []form{f}
	}
	if quad4 {
		return []form{merge(Fatha)}
	}
	return []form{merge(Fatha), merge(Kasra), f}
}
