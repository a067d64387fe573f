package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arabdict/arabdict"
)

func newParticipleCmd(a *app) *cobra.Command {
	var (
		verb    verbFlags
		passive bool
	)
	cmd := &cobra.Command{
		Use:     "participle <root>",
		Short:   "Print the spellings of the active or passive participle",
		Example: "  arabdict participle كتب --past a --present u --passive",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDialect()
			if err != nil {
				return err
			}
			root, ctx, err := verb.parse(args[0])
			if err != nil {
				return err
			}
			voice := arabdict.Active
			if passive {
				voice = arabdict.Passive
			}
			forms, err := a.conj.ConjugateParticiple(d, root, verb.stem, voice, ctx)
			if err != nil {
				return fmt.Errorf("participle %s: %w", root, err)
			}
			return a.printWords(cmd.OutOrStdout(), forms)
		},
	}
	verb.register(cmd)
	cmd.Flags().BoolVar(&passive, "passive", false, "print the passive participle")
	return cmd
}
