package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arabdict/arabdict"
)

func newContextsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts <root>",
		Short: "List the Form I vowel contexts of a root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := arabdict.ParseRoot(args[0])
			if err != nil {
				return err
			}
			choices := root.Stem1ContextChoices()
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), choices)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", root, root.Classify())
			for _, c := range choices {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", c)
			}
			return nil
		},
	}
}

func newDialectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the supported dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var infos []arabdict.Info
			for _, d := range arabdict.Dialects() {
				info, err := arabdict.DialectInfo(d)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), infos)
			}
			for _, i := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-4s %-10s %s\n", i.ID, i.ISO6393, i.Glottocode, i.Name)
			}
			return nil
		},
	}
}
