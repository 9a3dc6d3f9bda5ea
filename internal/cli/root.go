// Package cli wires configuration, logging and the item catalog into the
// cobra commands: the interactive tracker and its non-interactive helpers.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"valuetracker/internal/ui"
)

// options holds the flags shared by every command
type options struct {
	itemsFile  string
	configFile string
	sortKey    string
	desc       bool
	search     string
	debug      bool
}

// NewRootCmd creates the root command. Running it without a subcommand
// starts the interactive table.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "valuetracker",
		Short:   "Searchable, sortable table of character values",
		Long:    "valuetracker: browse a list of named items and their value ranges, filtered by name and sorted by name or value",
		Version: version,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTracker(cmd, opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.itemsFile, "items", "", "items file (.toml or .json); default is the built-in list")
	flags.StringVar(&opts.configFile, "config", "", "config file (default "+defaultConfigHint+")")
	flags.StringVar(&opts.sortKey, "sort", "", "initial sort column: name | value")
	flags.BoolVar(&opts.desc, "desc", false, "start with a descending sort")
	flags.StringVar(&opts.search, "search", "", "initial search text")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newListCmd(opts), newConfigCmd(opts))

	return cmd
}

const defaultConfigHint = "$XDG_CONFIG_HOME/valuetracker/config.toml"

const rootCmdExample = `  # Browse the built-in list
  valuetracker

  # Start sorted by value, highest first
  valuetracker --sort value --desc

  # Use your own list and start with a search
  valuetracker --items my-items.toml --search shadow

  # Print the table without the interactive view
  valuetracker list --sort value`

func runTracker(cmd *cobra.Command, opts *options) error {
	sess, err := openSession(cmd, opts, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	model := ui.NewModel(ui.Options{
		Config: sess.config,
		Items:  sess.items,
		Sort:   sess.sort,
		Search: opts.search,
		Bus:    sess.bus,
		Logger: sess.component("ui"),
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	sess.logger.Info().Msg("starting tracker")
	if _, err := p.Run(); err != nil {
		sess.logger.Error().Err(err).Msg("tracker exited with error")
		return fmt.Errorf("error running tracker: %w", err)
	}
	sess.logger.Info().Msg("tracker closed")

	return nil
}
