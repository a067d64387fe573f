package arabdict

// Stem templates of Modern Standard Arabic in pattern notation. The last
// radical carries no vowel; it comes from the suffix.
var msaTemplates = map[templateKey]string{
	{false, 1, Perfect, Active}:  "1a 2V 3",
	{false, 1, Perfect, Passive}: "1u 2i 3",
	{false, 1, Present, Active}:  "1o 2V 3",
	{false, 1, Present, Passive}: "1o 2a 3",

	{false, 2, Perfect, Active}:  "1a 2~a 3",
	{false, 2, Perfect, Passive}: "1u 2~i 3",
	{false, 2, Present, Active}:  "1a 2~i 3",
	{false, 2, Present, Passive}: "1a 2~a 3",

	{false, 3, Perfect, Active}:  "1a ا 2a 3",
	{false, 3, Perfect, Passive}: "1u و 2i 3",
	{false, 3, Present, Active}:  "1a ا 2i 3",
	{false, 3, Present, Passive}: "1a ا 2a 3",

	{false, 4, Perfect, Active}:  "ءa 1o 2a 3",
	{false, 4, Perfect, Passive}: "ءu 1o 2i 3",
	{false, 4, Present, Active}:  "1o 2i 3",
	{false, 4, Present, Passive}: "1o 2a 3",

	{false, 5, Perfect, Active}:  "تa 1a 2~a 3",
	{false, 5, Perfect, Passive}: "تu 1u 2~i 3",
	{false, 5, Present, Active}:  "تa 1a 2~a 3",
	{false, 5, Present, Passive}: "تa 1a 2~a 3",

	{false, 6, Perfect, Active}:  "تa 1a ا 2a 3",
	{false, 6, Perfect, Passive}: "تu 1u و 2i 3",
	{false, 6, Present, Active}:  "تa 1a ا 2a 3",
	{false, 6, Present, Passive}: "تa 1a ا 2a 3",

	{false, 7, Perfect, Active}:  "نo 1a 2a 3",
	{false, 7, Perfect, Passive}: "نo 1u 2i 3",
	{false, 7, Present, Active}:  "نo 1a 2i 3",
	{false, 7, Present, Passive}: "نo 1a 2a 3",

	{false, 8, Perfect, Active}:  "1o تa 2a 3",
	{false, 8, Perfect, Passive}: "1o تu 2i 3",
	{false, 8, Present, Active}:  "1o تa 2i 3",
	{false, 8, Present, Passive}: "1o تa 2a 3",

	{false, 9, Perfect, Active}: "1o 2a 3a 3",
	{false, 9, Present, Active}: "1o 2a 3i 3",

	{false, 10, Perfect, Active}:  "سo تa 1o 2a 3",
	{false, 10, Perfect, Passive}: "سo تu 1o 2i 3",
	{false, 10, Present, Active}:  "سo تa 1o 2i 3",
	{false, 10, Present, Passive}: "سo تa 1o 2a 3",

	{true, 1, Perfect, Active}:  "1a 2o 3a 4",
	{true, 1, Perfect, Passive}: "1u 2o 3i 4",
	{true, 1, Present, Active}:  "1a 2o 3i 4",
	{true, 1, Present, Passive}: "1a 2o 3a 4",

	{true, 2, Perfect, Active}:  "تa 1a 2o 3a 4",
	{true, 2, Perfect, Passive}: "تu 1u 2o 3i 4",
	{true, 2, Present, Active}:  "تa 1a 2o 3a 4",
	{true, 2, Present, Passive}: "تa 1a 2o 3a 4",

	{true, 4, Perfect, Active}: "1o 2a 3o 4a 4",
	{true, 4, Present, Active}: "1o 2a 3o 4i 4",
}

var msaPatterns = compileTemplates(msaTemplates)

var msaPerfectSuffixes = map[personKey]affix{
	{Third, Male, Singular}:    suffixOf(Fatha, ""),
	{Third, Female, Singular}:  suffixOf(Fatha, "تْ"),
	{Second, Male, Singular}:   suffixOf(Sukun, "تَ"),
	{Second, Female, Singular}: suffixOf(Sukun, "تِ"),
	{First, Male, Singular}:    suffixOf(Sukun, "تُ"),
	{Third, Male, Dual}:        suffixOf(Fatha, "ا"),
	{Third, Female, Dual}:      suffixOf(Fatha, "تَا"),
	{Second, Male, Dual}:       suffixOf(Sukun, "تُمَا"),
	{Third, Male, Plural}:      suffixOf(Dhamma, "وا"),
	{Third, Female, Plural}:    suffixOf(Sukun, "نَ"),
	{Second, Male, Plural}:     suffixOf(Sukun, "تُمْ"),
	{Second, Female, Plural}:   suffixOf(Sukun, "تُنَّ"),
	{First, Male, Plural}:      suffixOf(Sukun, "نَا"),
}

// msaPresentSuffixes builds the imperfect endings of each mood. The
// jussive and the imperative share their endings.
func msaPresentSuffixes() map[Mood]map[personKey]affix {
	moodVowel := map[Mood]Tashkil{Indicative: Dhamma, Subjunctive: Fatha, Jussive: Sukun, Imperative: Sukun}
	out := make(map[Mood]map[personKey]affix, len(moodVowel))
	for mood, v := range moodVowel {
		long := func(ind, other string) string {
			if mood == Indicative {
				return ind
			}
			return other
		}
		m := make(map[personKey]affix, len(allPersons))
		for _, k := range allPersons {
			switch {
			case k.numerus == Singular && k.person == Second && k.gender == Female:
				m[k] = suffixOf(Kasra, long("ينَ", "ي"))
			case k.numerus == Singular:
				m[k] = suffixOf(v, "")
			case k.numerus == Dual:
				m[k] = suffixOf(Fatha, long("انِ", "ا"))
			case k.person == First:
				m[k] = suffixOf(v, "")
			case k.gender == Female:
				m[k] = suffixOf(Sukun, "نَ")
			default:
				m[k] = suffixOf(Dhamma, long("ونَ", "وا"))
			}
		}
		out[mood] = m
	}
	return out
}

var msaTable = &dialectTable{
	info: Info{
		ID:         MSA,
		Name:       "Modern Standard Arabic",
		ISO6393:    "arb",
		Glottocode: "stan1318",
	},
	templates:       msaPatterns,
	perfectSuffixes: msaPerfectSuffixes,
	presentSuffixes: msaPresentSuffixes(),
	supports:        msaSupports,
	prefix:          msaPrefix,
	rules:           msaRules,
	participle:      msaParticiple,
}

// msaRules resolve weak radicals in radical order, after the per-root
// overrides and the stem 8 infix.
var msaRules = []rule{
	ruleIrregular,
	ruleInfix,
	ruleAssimilated,
	ruleHollow,
	ruleDefective,
	ruleDoubled,
}

func msaSupports(p Parameters, class RootClass) bool {
	if p.Stem == 9 && class.Has(Defective) {
		return false
	}
	return true
}

// keepsWeakR1 reports whether f opens with a ي first radical, or a و one
// kept by the lexical override. Its imperative is written إي.
func keepsWeakR1(c *conjugation, f form) bool {
	if f[0].radical != 1 {
		return false
	}
	switch f[0].Letter {
	case Ya:
		return true
	case Waw:
		return c.Stem1Context != nil && c.Stem1Context.SoundOverride
	}
	return false
}

// msaPrefix attaches the imperfect person prefix and hamzat al-wasl.
func msaPrefix(c *conjugation, f form) form {
	switch {
	case c.Tense == Perfect:
		if f[0].Tashkil == Sukun {
			v := Kasra
			if c.Voice == Passive {
				v = Dhamma
			}
			return f.prefixed(Alef, v)
		}
		return f
	case c.Mood == Imperative:
		if c.Stem == 4 && c.Root.Len() == 3 {
			return f.prefixed(Hamza, Fatha)
		}
		if f[0].Tashkil == Sukun {
			if c.Stem == 1 && keepsWeakR1(c, f) {
				f = f.clone()
				f[0] = mater(Ya)
				f[0].radical = 1
				return f.prefixed(AlefHamzaBelow, TashkilNone)
			}
			v := Kasra
			if c.Stem == 1 && c.Stem1Context != nil && c.Stem1Context.PresentVowel == Dhamma {
				v = Dhamma
			}
			return f.prefixed(Alef, v)
		}
		return f
	}
	v := Fatha
	if c.Voice == Passive || c.Stem == 2 || c.Stem == 3 || (c.Stem == 4 && c.Root.Len() == 3) || (c.Stem == 1 && c.Root.Len() == 4) {
		v = Dhamma
	}
	return f.prefixed(prefixLetter(c.key()), v)
}
