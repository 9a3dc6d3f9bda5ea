package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"valuetracker/internal/catalog"
	"valuetracker/internal/config"
	"valuetracker/internal/domain"
	"valuetracker/internal/eventbus"
	"valuetracker/internal/logging"
)

// session is everything a command needs once flags and config are resolved
type session struct {
	config *config.Config
	items  []domain.Item
	source string
	sort   domain.SortState
	bus    eventbus.EventBus
	logger zerolog.Logger
	log    *logging.Result
}

// openSession loads config, sets up logging and loads the items.
// With console set, logs go to the command's stderr instead of the log file.
func openSession(cmd *cobra.Command, opts *options, console bool) (*session, error) {
	cfg, err := configService(opts).Load()
	if err != nil {
		return nil, err
	}

	state, err := initialSort(cfg, opts)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.debug {
		level = "debug"
	}
	logResult, err := logging.New(logging.Config{
		Level:   level,
		File:    cfg.Log.File,
		Console: console,
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	sess := &session{
		config: cfg,
		sort:   state,
		log:    logResult,
		logger: logging.Component(logResult.Logger, "cli"),
	}
	sess.bus = eventbus.New(sess.component("eventbus"))
	subscribeEventLog(sess.bus, sess.component("events"))

	itemsFile := opts.itemsFile
	if itemsFile == "" {
		itemsFile = cfg.ItemsFile
	}
	sess.items, sess.source, err = catalog.Load(itemsFile)
	if err != nil {
		sess.bus.Publish(domain.ErrorEvent{Message: "failed to load items", Err: err})
		_ = sess.Close()
		return nil, err
	}
	sess.bus.Publish(domain.ItemsLoadedEvent{Source: sess.source, Count: len(sess.items)})

	sess.logger.Debug().
		Str("command", cmd.Name()).
		Str("sort", state.String()).
		Str("log_file", logResult.FilePath).
		Msg("session ready")

	return sess, nil
}

func (s *session) component(name string) zerolog.Logger {
	return logging.Component(s.log.Logger, name)
}

// Close releases the log file
func (s *session) Close() error {
	return s.log.Close()
}

func configService(opts *options) config.ConfigService {
	if opts.configFile != "" {
		return config.NewConfigServiceForPath(opts.configFile)
	}
	return config.NewConfigService()
}

// initialSort applies --sort and --desc on top of the configured sort.
// Naming a column on the command line resets the direction to ascending.
func initialSort(cfg *config.Config, opts *options) (domain.SortState, error) {
	state, err := cfg.Sort.State()
	if err != nil {
		return domain.SortState{}, err
	}
	if opts.sortKey != "" {
		key, err := domain.ParseSortKey(opts.sortKey)
		if err != nil {
			return domain.SortState{}, fmt.Errorf("invalid --sort: %w", err)
		}
		state = domain.SortState{Key: key, Direction: domain.Ascending}
	}
	if opts.desc {
		state.Direction = domain.Descending
	}
	return state, nil
}

// subscribeEventLog records every domain event in the log
func subscribeEventLog(bus eventbus.EventBus, logger zerolog.Logger) {
	bus.Subscribe(eventbus.EventItemsLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemsLoadedEvent); ok {
			logger.Info().Str("source", event.Source).Int("count", event.Count).Msg("items loaded")
		}
	})
	bus.Subscribe(eventbus.EventSearchChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchChangedEvent); ok {
			logger.Debug().Str("query", event.Query).Int("matches", event.Matches).Msg("search changed")
		}
	})
	bus.Subscribe(eventbus.EventSortChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SortChangedEvent); ok {
			logger.Debug().Stringer("from", event.Old).Stringer("to", event.New).Msg("sort changed")
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logger.Error().Err(event.Err).Msg(event.Message)
		}
	})
}
