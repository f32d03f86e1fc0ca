package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shide1989/zsh-docs/internal/search"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Searches the local index of the built site",
	Long: `The search command queries the search index written by build into the
output directory. A page matches when its title, headings or text contain
every word of the query.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.OutOrStdout(), strings.Join(args, " "))
	},
}

func runSearch(w io.Writer, query string) error {
	idx, err := search.ReadFile(appConfig.OutputDir)
	if err != nil {
		return fmt.Errorf("%w (run build first)", err)
	}

	hits := idx.Search(query)
	if len(hits) == 0 {
		fmt.Fprintf(w, "%s no page matches %q\n", yellow("!"), query)
		return nil
	}
	for i, doc := range hits {
		if searchLimit > 0 && i == searchLimit {
			fmt.Fprintf(w, "  ... %d more\n", len(hits)-searchLimit)
			break
		}
		fmt.Fprintf(w, "%s %s", bold(doc.Title), green(doc.Link))
		if doc.Section != "" {
			fmt.Fprintf(w, " (%s)", doc.Section)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results, 0 for all")
	rootCmd.AddCommand(searchCmd)
}
