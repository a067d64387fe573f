package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arabdict/arabdict"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "analyze <form>",
		Short:   "Find the roots and stems that produce a conjugated form",
		Example: "  arabdict analyze يُعِدّ\n  arabdict analyze --buckwalter yuEid~",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDialect()
			if err != nil {
				return err
			}
			parse := arabdict.ParseWord
			if a.buckwalter {
				parse = arabdict.ParseBuckwalter
			}
			w, err := parse(args[0])
			if err != nil {
				return err
			}
			res, err := a.conj.AnalyzeConjugation(cmd.Context(), d, w)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", args[0], err)
			}
			results := arabdict.SortedResults(res)
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), results)
			}
			if len(results) == 0 {
				return fmt.Errorf("no root produces %s", w)
			}
			for _, r := range results {
				stems := make([]string, 0, len(r.Stems.Stems()))
				for _, s := range r.Stems.Stems() {
					stems = append(stems, strconv.Itoa(s))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Root, strings.Join(stems, ","))
			}
			return nil
		},
	}
}
