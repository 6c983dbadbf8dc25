package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Keyword    string
	MaxResults int
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes from the configured store",
		Example: `  # List the first ten recipes
  ladle list

  # Search by label keyword
  ladle list --keyword chicken

  # List from a SQLite database
  ladle list --store sqlite --database .ladle/recipes.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Keyword, "keyword", "", "Filter recipes by label keyword")
	cmd.Flags().IntVar(&opts.MaxResults, "max-results", 10, "Maximum number of recipes to print")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := GetLogger(ctx)

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	recipes, err := st.Search(ctx, opts.Keyword, opts.MaxResults)
	if err != nil {
		return err
	}

	if len(recipes) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(0 recipes)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Label", "Source", "URL"})
	for _, r := range recipes {
		t.AppendRow(table.Row{r.ID, r.Label, r.Source, r.URL})
	}
	t.Render()

	return nil
}
