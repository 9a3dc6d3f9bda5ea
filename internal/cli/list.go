package cli

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"valuetracker/internal/config"
	"valuetracker/internal/domain"
	"valuetracker/internal/logic"
	"valuetracker/internal/ui/views"
)

// columnGap separates the name and value columns in list output
const columnGap = 3

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the sorted, filtered table and exit",
		Example: `  # Highest values first
  valuetracker list --sort value --desc

  # Names containing "puppet"
  valuetracker list --search puppet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}
}

func runList(cmd *cobra.Command, opts *options) error {
	sess, err := openSession(cmd, opts, opts.debug)
	if err != nil {
		return err
	}
	defer sess.Close()

	table := logic.NewItemTable(sess.items,
		logic.WithSortState(sess.sort),
		logic.WithSearch(opts.search),
	)
	sess.logger.Debug().
		Int("shown", table.Count()).
		Int("total", table.Total()).
		Msg("listing items")

	return writeTable(cmd.OutOrStdout(), sess.config.UISettings, table)
}

// writeTable prints headers, rows and the count line. Widths are measured
// in terminal cells so wide runes stay aligned.
func writeTable(w io.Writer, settings config.UISettings, table *logic.ItemTable) error {
	state := table.SortState()
	nameHeader := views.HeaderTitle(settings.NameHeader, domain.SortByName, state, false)
	valueHeader := views.HeaderTitle(settings.ValueHeader, domain.SortByValue, state, false)

	items := table.Display()

	nameWidth := runewidth.StringWidth(nameHeader)
	valueWidth := runewidth.StringWidth(valueHeader)
	for _, item := range items {
		nameWidth = max(nameWidth, runewidth.StringWidth(item.Name))
		valueWidth = max(valueWidth, runewidth.StringWidth(item.Value))
	}

	row := func(name, value string) error {
		_, err := fmt.Fprintf(w, "%s%*s%s\n",
			runewidth.FillRight(name, nameWidth), columnGap, "",
			runewidth.FillLeft(value, valueWidth))
		return err
	}

	if err := row(nameHeader, valueHeader); err != nil {
		return err
	}
	for _, item := range items {
		if err := row(item.Name, item.Value); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", views.CountLine(table.Count(), settings.Noun))
	return err
}
