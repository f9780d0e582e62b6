package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/verdict/internal/casebook"
)

func newCasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases [id]",
		Short: "List the cases on the docket, or show one case",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			withSources, _ := cmd.Flags().GetBool("sources")

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("case id %q: %w", args[0], err)
				}
				i := catalog.IndexOf(id)
				if i < 0 {
					return fmt.Errorf("no case with id %d", id)
				}
				c, _ := catalog.At(i)
				printCase(out, c, i, catalog.Count())
				return nil
			}

			fmt.Fprintf(out, "%-3s  %-40s  %-45s  %s\n", "ID", "Title", "Subtitle", "Outcome")
			fmt.Fprintln(out, strings.Repeat("─", 110))

			for _, c := range catalog.All() {
				fmt.Fprintf(out, "%-3d  %-40s  %-45s  %s\n",
					c.ID, truncate(c.Title, 40), truncate(c.Subtitle, 45), c.CorrectVerdict.DisplayName())
				if withSources {
					for _, s := range c.Sources {
						fmt.Fprintf(out, "     %s <%s>\n", s.Label, s.URL)
					}
				}
			}

			fmt.Fprintf(out, "\n%d cases\n", catalog.Count())
			return nil
		},
	}
	cmd.Flags().Bool("sources", false, "Also list each case's sources")
	return cmd
}

// printCase writes a single case with its docket position, outcome and sources.
func printCase(out io.Writer, c casebook.Case, index, total int) {
	fmt.Fprintf(out, "Case %d of %d (id %d)\n", index+1, total, c.ID)
	fmt.Fprintf(out, "%s\n%s\n\n", c.Title, c.Subtitle)
	fmt.Fprintf(out, "Outcome: %s (%s)\n", c.CorrectLabel(), c.CorrectVerdict.DisplayName())
	for _, s := range c.Sources {
		fmt.Fprintf(out, "  %s <%s>\n", s.Label, s.URL)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
