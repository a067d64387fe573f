package arabdict

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// tableMoods lists the moods of each tense in table order.
var tableMoods = map[Tense][]Mood{
	Perfect: {Indicative},
	Present: {Indicative, Subjunctive, Jussive, Imperative},
}

// CellKey names the cell p selects, such as "perfect.active.3ms" or
// "present.active.jussive.2fp".
func (p Parameters) CellKey() string {
	parts := []string{p.Tense.String(), p.Voice.String()}
	if p.Tense == Present {
		parts = append(parts, p.Mood.String())
	}
	return strings.Join(append(parts, p.key().String()), ".")
}

// cells yields every well-formed parameter tuple for the verb of base in
// table order. Imperatives are only yielded for the active second person.
func cells(base Parameters) iter.Seq[Parameters] {
	return func(yield func(Parameters) bool) {
		for _, tense := range []Tense{Perfect, Present} {
			for _, voice := range []Voice{Active, Passive} {
				for _, mood := range tableMoods[tense] {
					if mood == Imperative && voice != Active {
						continue
					}
					for _, k := range allPersons {
						if mood == Imperative && k.person != Second {
							continue
						}
						p := base
						p.Tense, p.Voice, p.Mood = tense, voice, mood
						p.Person, p.Gender, p.Numerus = k.person, k.gender, k.numerus
						if !yield(p) {
							return
						}
					}
				}
			}
		}
	}
}

// table computes every cell dialect t defines for the verb. Cells the
// dialect does not define are left out.
func table(t *dialectTable, root VerbRoot, stem int, ctx *Stem1Context) (*ConjugationTable, error) {
	base := Parameters{Root: root, Stem: stem, Stem1Context: ctx, Person: Third}
	if err := base.validate(); err != nil {
		return nil, err
	}
	out := &ConjugationTable{Dialect: t.info.ID, Root: root, Stem: stem, Context: ctx}
	for p := range cells(base) {
		forms, err := conjugate(t, p)
		if errors.Is(err, ErrUnsupportedParameterCombination) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out.Cells = append(out.Cells, Cell{Key: p.CellKey(), Forms: forms})
	}
	if len(out.Cells) == 0 {
		return nil, fmt.Errorf("%w: %s defines no cell for stem %d of %s", ErrUnsupportedParameterCombination, t.info.Name, stem, root)
	}
	return out, nil
}
