package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arabdict/arabdict"
)

func newMasdarCmd(a *app) *cobra.Command {
	var stem int
	cmd := &cobra.Command{
		Use:     "masdar <root>",
		Aliases: []string{"verbal-noun"},
		Short:   "Print the verbal nouns of a derived stem",
		Example: "  arabdict masdar حجج --stem 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := arabdict.ParseRoot(args[0])
			if err != nil {
				return err
			}
			forms, err := a.conj.ConjugateVerbalNoun(root, stem)
			if err != nil {
				return fmt.Errorf("masdar %s: %w", root, err)
			}
			return a.printWords(cmd.OutOrStdout(), forms)
		},
	}
	cmd.Flags().IntVarP(&stem, "stem", "s", 2, "verb stem")
	return cmd
}
