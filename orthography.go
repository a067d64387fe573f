package arabdict

// orthography turns a finished form into its written variants: identical
// consonants merge under shadda, weak letters after a matching vowel
// become matres, and every ء takes its seat.
func orthography(f form) []Word {
	w := mergeIdentical(f)
	w = mergeInitialHamza(w)
	w = normalizeMatres(w)
	return seatHamzas(w)
}

// mergeIdentical writes a consonant with sukun followed by the same
// consonant as one letter with shadda. Prefixes never merge into the stem.
func mergeIdentical(f form) Word {
	out := make(Word, 0, len(f))
	for i := 0; i < len(f); i++ {
		g := f[i].VocalizedGrapheme
		if i+1 < len(f) && !f[i].prefix && g.Tashkil == Sukun && !g.Shadda {
			if n := f[i+1].VocalizedGrapheme; n.Letter == g.Letter && !n.Shadda && !n.isMater() {
				n.Shadda = true
				out = append(out, n)
				i++
				continue
			}
		}
		out = append(out, g)
	}
	return out
}

// mergeInitialHamza contracts a word-initial hamza or hamzat al-wasl
// followed by a silent hamza.
func mergeInitialHamza(w Word) Word {
	if len(w) < 2 || w[1].Letter != Hamza || w[1].Tashkil != Sukun {
		return w
	}
	first := w[0]
	out := append(Word(nil), w...)
	switch {
	case first.Letter == Hamza && first.Tashkil == Fatha:
		out[0] = VocalizedGrapheme{Letter: AlefMadda}
		return append(out[:1], out[2:]...)
	case first.Letter == Hamza || first.Letter == Alef:
		out[1] = VocalizedGrapheme{Letter: first.Tashkil.mater()}
		return out
	}
	return w
}

// normalizeMatres turns و or ي with sukun after dhamma or kasra into the
// matching long vowel letter.
func normalizeMatres(w Word) Word {
	out := append(Word(nil), w...)
	for i := 1; i < len(out); i++ {
		g := &out[i]
		if !g.Letter.IsWeak() || g.Tashkil != Sukun || g.Shadda {
			continue
		}
		switch out[i-1].Tashkil {
		case Dhamma:
			*g = VocalizedGrapheme{Letter: Waw}
		case Kasra:
			*g = VocalizedGrapheme{Letter: Ya}
		}
	}
	return out
}

// seatHamzas places every ء on its seat. A hamza with dhamma after a long
// vowel is written both on ي and on و, so the result may hold two words.
func seatHamzas(w Word) []Word {
	words := []Word{append(Word(nil), w...)}
	for i := 0; i < len(w); i++ {
		if w[i].Letter != Hamza {
			continue
		}
		seats := hamzaSeats(w, i)
		var next []Word
		for _, cur := range words {
			for _, s := range seats {
				v := append(Word(nil), cur...)
				v[i].Letter = s
				next = append(next, v)
			}
		}
		words = next
	}
	for i, v := range words {
		words[i] = contractMadda(v)
	}
	return words
}

// hamzaSeats returns the admissible seats of the ء at position i.
func hamzaSeats(w Word, i int) []Letter {
	g := w[i]
	if i == 0 {
		if g.Tashkil == Kasra || g.Tashkil == Kasratan {
			return []Letter{AlefHamzaBelow}
		}
		return []Letter{AlefHamza}
	}
	prev := w[i-1]
	if i == len(w)-1 {
		if prev.isMater() {
			return []Letter{Hamza}
		}
		switch prev.Tashkil {
		case Fatha:
			return []Letter{AlefHamza}
		case Kasra:
			return []Letter{YaHamza}
		case Dhamma:
			return []Letter{WawHamza}
		}
		return []Letter{Hamza}
	}
	switch {
	case g.Tashkil == Dhamma && prev.isMater():
		return []Letter{YaHamza, WawHamza}
	case g.Tashkil == Kasra || prev.Tashkil == Kasra || (prev.isMater() && prev.Letter == Ya):
		return []Letter{YaHamza}
	case g.Tashkil == Dhamma || prev.Tashkil == Dhamma:
		return []Letter{WawHamza}
	case prev.isMater():
		return []Letter{Hamza}
	}
	return []Letter{AlefHamza}
}

// contractMadda writes أَ followed by a bare ا as آ.
func contractMadda(w Word) Word {
	for i := 0; i+1 < len(w); i++ {
		if w[i].Letter == AlefHamza && w[i].Tashkil == Fatha && !w[i].Shadda && w[i+1].Letter == Alef && w[i+1].isMater() {
			out := append(Word(nil), w[:i]...)
			out = append(out, VocalizedGrapheme{Letter: AlefMadda})
			return append(out, w[i+2:]...)
		}
	}
	return w
}
