package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arabdict/arabdict"
)

func newConjugateCmd(a *app) *cobra.Command {
	var (
		verb                                         verbFlags
		tense, voice, mood, person, gender, numerus string
	)
	cmd := &cobra.Command{
		Use:   "conjugate <root>",
		Short: "Print the spellings of one conjugation cell",
		Example: `  arabdict conjugate كتب --past a --present u --tense present --person 1
  arabdict conjugate وجد --past a --present i --tense present --mood imperative --person 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDialect()
			if err != nil {
				return err
			}
			root, ctx, err := verb.parse(args[0])
			if err != nil {
				return err
			}
			p := arabdict.Parameters{Root: root, Stem: verb.stem, Stem1Context: ctx}
			if p.Tense, err = arabdict.ParseTense(tense); err != nil {
				return err
			}
			if p.Voice, err = arabdict.ParseVoice(voice); err != nil {
				return err
			}
			if p.Mood, err = arabdict.ParseMood(mood); err != nil {
				return err
			}
			if p.Person, err = arabdict.ParsePerson(person); err != nil {
				return err
			}
			if p.Gender, err = arabdict.ParseGender(gender); err != nil {
				return err
			}
			if p.Numerus, err = arabdict.ParseNumerus(numerus); err != nil {
				return err
			}
			forms, err := a.conj.Conjugate(d, p)
			if err != nil {
				return fmt.Errorf("conjugate %s: %w", root, err)
			}
			return a.printWords(cmd.OutOrStdout(), forms)
		},
	}
	verb.register(cmd)
	f := cmd.Flags()
	f.StringVar(&tense, "tense", "perfect", "perfect or present")
	f.StringVar(&voice, "voice", "active", "active or passive")
	f.StringVar(&mood, "mood", "indicative", "indicative, subjunctive, jussive or imperative")
	f.StringVar(&person, "person", "3", "1, 2 or 3")
	f.StringVar(&gender, "gender", "m", "m or f")
	f.StringVar(&numerus, "numerus", "s", "s, d or p")
	return cmd
}
