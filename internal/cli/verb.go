package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arabdict/arabdict"
)

// verbFlags selects a verb: its root argument, stem and Form I vowels.
type verbFlags struct {
	stem    int
	past    string
	present string
	sound   bool
}

func (v *verbFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&v.stem, "stem", "s", 1, "verb stem (1-10, or 1, 2, 4 for quadriliteral roots)")
	f.StringVar(&v.past, "past", "", "Form I perfect vowel: a, i or u")
	f.StringVar(&v.present, "present", "", "Form I imperfect vowel: a, i or u")
	f.BoolVar(&v.sound, "sound", false, "keep an assimilated first radical in the imperfect")
}

// context returns the Form I context, nil when no vowel flag is set.
func (v *verbFlags) context() (*arabdict.Stem1Context, error) {
	if v.past == "" && v.present == "" {
		return nil, nil
	}
	past, ok := arabdict.ParseTashkil(v.past)
	if !ok {
		return nil, fmt.Errorf("--past: unknown vowel %q", v.past)
	}
	present, ok := arabdict.ParseTashkil(v.present)
	if !ok {
		return nil, fmt.Errorf("--present: unknown vowel %q", v.present)
	}
	return &arabdict.Stem1Context{PastVowel: past, PresentVowel: present, SoundOverride: v.sound}, nil
}

func (v *verbFlags) parse(rootArg string) (arabdict.VerbRoot, *arabdict.Stem1Context, error) {
	root, err := arabdict.ParseRoot(rootArg)
	if err != nil {
		return arabdict.VerbRoot{}, nil, err
	}
	ctx, err := v.context()
	if err != nil {
		return arabdict.VerbRoot{}, nil, err
	}
	return root, ctx, nil
}
