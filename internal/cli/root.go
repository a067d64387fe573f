package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arabdict/arabdict"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	verbose    bool
	buckwalter bool
	asJSON     bool
	dialect    string

	log  *zap.Logger
	conj *arabdict.Conjugator
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "arabdict",
		Short: "Conjugate Arabic verbs and analyze conjugated forms",
		Long: `arabdict conjugates Arabic verbs in Modern Standard Arabic and Lebanese
Arabic from their root, and finds the roots and stems behind a conjugated form.

Roots are written with or without dashes: ك-ت-ب or كتب.
Form I verbs need their lexical vowels: --past a --present u.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	f := cmd.PersistentFlags()
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	f.BoolVarP(&a.buckwalter, "buckwalter", "b", false, "print Buckwalter transliteration")
	f.BoolVar(&a.asJSON, "json", false, "print JSON")
	f.StringVarP(&a.dialect, "dialect", "d", string(arabdict.MSA), "dialect id, ISO 639-3 code or glottocode")

	cmd.AddCommand(
		newConjugateCmd(a),
		newTableCmd(a),
		newParticipleCmd(a),
		newMasdarCmd(a),
		newAnalyzeCmd(a),
		newContextsCmd(a),
		newDialectsCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := zc.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = log
	a.conj, err = arabdict.New(arabdict.WithLogger(log))
	return err
}

func (a *app) parseDialect() (arabdict.Dialect, error) {
	return arabdict.ParseDialect(a.dialect)
}

// render formats w as Unicode or Buckwalter.
func (a *app) render(w arabdict.Word) string {
	if a.buckwalter {
		return w.Buckwalter()
	}
	return w.String()
}

func (a *app) printWords(out io.Writer, s arabdict.EquivalenceSet) error {
	if a.asJSON {
		return a.printJSON(out, s)
	}
	for _, w := range s.Words() {
		if _, err := fmt.Fprintln(out, a.render(w)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
