package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"github.com/productscience/clubstaking/app"
)

const flagNow = "now"

type hostContextKey struct{}

// hostContext is what every subcommand needs to reach the ledger.
type hostContext struct {
	home   string
	config Config
	from   string
	now    time.Time
	logger log.Logger
}

// NewRootCmd creates the root command of the ledger host.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           app.Name + "d",
		Short:         "Club ownership, staking and reward ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			hc, err := loadHostContext(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), hostContextKey{}, hc))
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flags.FlagFrom, "", "Address that signs the message (defaults to 'from' in config.yaml)")
	rootCmd.PersistentFlags().String(flagNow, "", "Block time as RFC3339 or unix seconds (defaults to the wall clock)")

	rootCmd.AddCommand(
		InitCmd(),
		ExportCmd(),
		TxCmd(),
		QueryCmd(),
		ServeCmd(),
	)
	return rootCmd
}

func loadHostContext(cmd *cobra.Command) (hostContext, error) {
	home, err := cmd.Flags().GetString(flags.FlagHome)
	if err != nil || home == "" {
		home = app.DefaultNodeHome
	}

	config, err := readConfig(configPath(home))
	if err != nil {
		return hostContext{}, err
	}

	if cmd.Flags().Changed(flags.FlagLogLevel) {
		config.LogLevel, _ = cmd.Flags().GetString(flags.FlagLogLevel)
	}
	if cmd.Flags().Changed(flags.FlagLogFormat) {
		format, _ := cmd.Flags().GetString(flags.FlagLogFormat)
		config.LogJSON = format == "json"
	}
	logger, err := newLogger(cmd, config)
	if err != nil {
		return hostContext{}, err
	}

	from, _ := cmd.Flags().GetString(flags.FlagFrom)
	if from == "" {
		from = config.From
	}

	nowFlag, _ := cmd.Flags().GetString(flagNow)
	now, err := parseTime(nowFlag)
	if err != nil {
		return hostContext{}, err
	}

	return hostContext{
		home:   home,
		config: config,
		from:   from,
		now:    now,
		logger: logger,
	}, nil
}

func newLogger(cmd *cobra.Command, config Config) (log.Logger, error) {
	level := config.LogLevel
	if !strings.Contains(level, ":") {
		level = "*:" + level
	}
	filter, err := log.ParseLogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}
	opts := []log.Option{log.FilterOption(filter), log.ColorOption(false)}
	if config.LogJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(cmd.ErrOrStderr(), opts...), nil
}

// parseTime accepts RFC3339 or unix seconds. Empty means now.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected RFC3339 or unix seconds", flagNow, s)
	}
	return t.UTC(), nil
}

func getHostContext(cmd *cobra.Command) hostContext {
	hc, ok := cmd.Context().Value(hostContextKey{}).(hostContext)
	if !ok {
		panic("host context not loaded")
	}
	return hc
}

// withApp opens the ledger for the duration of fn. The ledger must already
// hold a genesis.
func withApp(cmd *cobra.Command, fn func(hc hostContext, a *app.App) error) error {
	hc := getHostContext(cmd)
	a, err := app.Open(hc.home, hc.logger, hc.config.Bookkeeping)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.Initialized() {
		return fmt.Errorf("ledger at %s has no genesis, run init first", hc.home)
	}
	return fn(hc, a)
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
