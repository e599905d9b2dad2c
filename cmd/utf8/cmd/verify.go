package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CNife/simple-utf8/fixture"
)

func newVerifyCmd(a *app) *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the codec against a directory of text fixtures",
		Long: `Verify loads every file in the fixtures directory, decodes it with the
codec and with Go's native UTF-8 handling, and checks that both agree and
that encoding the scalars reproduces the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = a.cfg.FixturesDir
			}
			return a.runVerify(cmd, dir)
		},
	}

	verifyCmd.Flags().StringP("dir", "d", "", "Fixtures directory (defaults to fixtures_dir from config)")
	return verifyCmd
}

func (a *app) runVerify(cmd *cobra.Command, dir string) error {
	fixtures, err := fixture.Load(dir)
	if err != nil {
		return err
	}

	results, err := fixture.VerifyAll(cmd.Context(), fixtures)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	failed := 0
	for _, r := range results {
		if r.Passed() {
			fmt.Fprintf(w, "%s\t%s\t%d bytes\t%d scalars\n", a.render(passStyle, "PASS"), r.Name, r.Bytes, r.Scalars)
			continue
		}
		failed++
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.render(failStyle, "FAIL"), r.Name, a.render(errorStyle, r.Err.Error()))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d passed, %d failed", len(results)-failed, failed)
	fmt.Fprintln(cmd.OutOrStdout(), a.render(dimStyle, summary))
	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failed, len(results))
	}
	return nil
}
