package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	var verb verbFlags
	cmd := &cobra.Command{
		Use:     "table <root>",
		Short:   "Print every cell of a verb",
		Example: "  arabdict table كتب --stem 2",
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
			t, err := a.conj.Table(d, root, verb.stem, ctx)
			if err != nil {
				return fmt.Errorf("table %s: %w", root, err)
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), t)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range t.Cells {
				var forms []string
				for _, w := range c.Forms.Words() {
					forms = append(forms, a.render(w))
				}
				fmt.Fprintf(tw, "%s\t%s\n", c.Key, strings.Join(forms, " | "))
			}
			return tw.Flush()
		},
	}
	verb.register(cmd)
	return cmd
}
