package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/productscience/clubstaking/app"
)

const (
	genesisFileName = "genesis.json"

	flagGenesis  = "genesis"
	flagOperator = "operator"
	flagBalance  = "balance"
	flagOutput   = "output"
)

// InitCmd writes config.yaml and genesis.json under --home and commits the
// genesis state.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the ledger from a genesis file or from defaults",
		Long: `Create the ledger. Without --genesis a default genesis is generated at the --now time,
with --operator as the ledger operator and opening funds from repeated --balance address=coins flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hc := getHostContext(cmd)
			genesisPath, _ := cmd.Flags().GetString(flagGenesis)
			operator, _ := cmd.Flags().GetString(flagOperator)
			balances, _ := cmd.Flags().GetStringArray(flagBalance)

			var genesis app.Genesis
			if genesisPath != "" {
				read, err := app.ReadGenesisFile(genesisPath)
				if err != nil {
					return err
				}
				genesis = read
			} else {
				genesis = app.DefaultGenesis(hc.now)
				if operator != "" {
					genesis.ClubStaking.Params.Operator = operator
				}
				for _, entry := range balances {
					balance, err := parseBalance(entry)
					if err != nil {
						return err
					}
					genesis.Balances = append(genesis.Balances, balance)
				}
			}

			if err := os.MkdirAll(hc.home, 0o755); err != nil {
				return err
			}
			if _, err := os.Stat(configPath(hc.home)); errors.Is(err, fs.ErrNotExist) {
				if err := writeConfig(configPath(hc.home), hc.config); err != nil {
					return err
				}
			}

			a, err := app.Open(hc.home, hc.logger, hc.config.Bookkeeping)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.InitChain(genesis); err != nil {
				return err
			}
			if err := app.WriteGenesisFile(filepath.Join(hc.home, genesisFileName), genesis); err != nil {
				return err
			}
			hc.logger.Info("ledger initialized", "home", hc.home, "operator", genesis.ClubStaking.Params.Operator)
			return printJSON(cmd, genesis)
		},
	}
	cmd.Flags().String(flagGenesis, "", "Genesis file to start from")
	cmd.Flags().String(flagOperator, "", "Operator address (defaults to the gov module account)")
	cmd.Flags().StringArray(flagBalance, nil, "Opening funds as address=coins, e.g. cosmos1...=1000000uclub")
	return cmd
}

func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the committed ledger as a genesis file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString(flagOutput)
			return withApp(cmd, func(hc hostContext, a *app.App) error {
				genesis, err := a.ExportGenesis(hc.now)
				if err != nil {
					return err
				}
				if output != "" {
					return app.WriteGenesisFile(output, genesis)
				}
				return printJSON(cmd, genesis)
			})
		},
	}
	cmd.Flags().String(flagOutput, "", "Write to this file instead of stdout")
	return cmd
}

func parseBalance(entry string) (app.Balance, error) {
	address, coinsStr, ok := strings.Cut(entry, "=")
	if !ok {
		return app.Balance{}, fmt.Errorf("invalid balance %q: expected address=coins", entry)
	}
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		return app.Balance{}, fmt.Errorf("invalid balance address %q: %w", address, err)
	}
	coins, err := sdk.ParseCoinsNormalized(coinsStr)
	if err != nil {
		return app.Balance{}, fmt.Errorf("invalid balance coins %q: %w", coinsStr, err)
	}
	return app.Balance{Address: address, Coins: coins}, nil
}
