package cmd

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/spf13/cobra"

	"github.com/productscience/clubstaking/app"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

const flagDenom = "denom"

func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Read the committed ledger",
	}
	cmd.AddCommand(
		queryCmd("params", "Show the ledger parameters", 0, func(ctx context.Context, qs types.QueryServer, _ []string) (any, error) {
			return qs.Params(ctx, &types.QueryParamsRequest{})
		}),
		queryCmd("ownership [club-name]", "Show who owns a club", 1, func(ctx context.Context, qs types.QueryServer, args []string) (any, error) {
			return qs.ClubOwnership(ctx, &types.QueryClubOwnershipRequest{ClubName: args[0]})
		}),
		queryCmd("previous-owner [club-name]", "Show the reward still owed to a club's seller", 1, func(ctx context.Context, qs types.QueryServer, args []string) (any, error) {
			return qs.ClubPreviousOwner(ctx, &types.QueryClubPreviousOwnerRequest{ClubName: args[0]})
		}),
		queryCmd("stakes [club-name]", "List the stakes on a club", 1, func(ctx context.Context, qs types.QueryServer, args []string) (any, error) {
			return qs.ClubStakes(ctx, &types.QueryClubStakesRequest{ClubName: args[0]})
		}),
		queryCmd("bonds [club-name]", "List the pending bonds of a club", 1, func(ctx context.Context, qs types.QueryServer, args []string) (any, error) {
			return qs.ClubBonds(ctx, &types.QueryClubBondsRequest{ClubName: args[0]})
		}),
		queryCmd("all-stakes", "List every stake", 0, func(ctx context.Context, qs types.QueryServer, _ []string) (any, error) {
			return qs.AllStakes(ctx, &types.QueryAllStakesRequest{})
		}),
		queryCmd("all-bonds", "List every pending bond", 0, func(ctx context.Context, qs types.QueryServer, _ []string) (any, error) {
			return qs.AllBonds(ctx, &types.QueryAllBondsRequest{})
		}),
		queryCmd("ranking", "Rank clubs by total stake", 0, func(ctx context.Context, qs types.QueryServer, _ []string) (any, error) {
			return qs.ClubRanking(ctx, &types.QueryClubRankingRequest{})
		}),
		queryCmd("reward-amount", "Show the reward pool", 0, func(ctx context.Context, qs types.QueryServer, _ []string) (any, error) {
			return qs.RewardAmount(ctx, &types.QueryRewardAmountRequest{})
		}),
		queryCmd("escrow [address]", "Show the amount held in escrow for an account", 1, func(ctx context.Context, qs types.QueryServer, args []string) (any, error) {
			return qs.Escrow(ctx, &types.QueryEscrowRequest{Address: args[0]})
		}),
		queryCmd("last-distribution", "Show the most recent reward distribution", 0, func(ctx context.Context, qs types.QueryServer, _ []string) (any, error) {
			return qs.LastDistribution(ctx, &types.QueryLastDistributionRequest{})
		}),
		balanceCmd(),
	)
	return cmd
}

func queryCmd(use string, short string, nargs int, query func(ctx context.Context, qs types.QueryServer, args []string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(hc hostContext, a *app.App) error {
				resp, err := query(a.QueryContext(hc.now), a.QueryServer(), args)
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			})
		},
	}
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Show an account's bank balance, or the club module's with --module",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toModule, _ := cmd.Flags().GetBool(flagModule)
			denom, _ := cmd.Flags().GetString(flagDenom)
			return withApp(cmd, func(hc hostContext, a *app.App) error {
				ctx := a.QueryContext(hc.now)

				addr := authtypes.NewModuleAddress(types.ModuleName)
				if !toModule {
					address := hc.from
					if len(args) == 1 {
						address = args[0]
					}
					parsed, err := sdk.AccAddressFromBech32(address)
					if err != nil {
						return err
					}
					addr = parsed
				}
				if denom == "" {
					params, err := a.ClubStakingKeeper.GetParams(ctx)
					if err != nil {
						return err
					}
					denom = params.Denom
				}

				amount, err := a.Bank.GetBalance(ctx, addr, denom)
				if err != nil {
					return err
				}
				return printJSON(cmd, app.Balance{Address: addr.String(), Coins: sdk.NewCoins(sdk.NewCoin(denom, amount))})
			})
		},
	}
	cmd.Flags().Bool(flagModule, false, "Show the club module account")
	cmd.Flags().String(flagDenom, "", "Denomination (defaults to the ledger denom)")
	return cmd
}
