package cmd

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/spf13/cobra"

	"github.com/productscience/clubstaking/app"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

const (
	flagSeller    = "seller"
	flagImmediate = "immediate"
	flagModule    = "module"
)

// TxResult is printed after a message commits.
type TxResult struct {
	Height int64            `json:"height"`
	Time   string           `json:"time"`
	Events sdk.StringEvents `json:"events"`
}

func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Submit a message to the ledger",
	}
	cmd.AddCommand(
		buyClubCmd(),
		releaseClubCmd(),
		claimOwnerRewardsCmd(),
		claimPreviousOwnerRewardsCmd(),
		stakeCmd(),
		withdrawCmd(),
		claimRewardsCmd(),
		refundStakeoutsCmd(),
		setRewardAmountCmd(),
		distributeRewardsCmd(),
		mintCmd(),
	)
	return cmd
}

// deliver runs one message on a new block and prints what it emitted.
func deliver(cmd *cobra.Command, fn func(ctx sdk.Context, ms types.MsgServer, from string) error) error {
	return withApp(cmd, func(hc hostContext, a *app.App) error {
		if hc.from == "" {
			return fmt.Errorf("no signer: pass --from or set 'from' in config.yaml")
		}
		if _, err := sdk.AccAddressFromBech32(hc.from); err != nil {
			return fmt.Errorf("invalid signer %s: %w", hc.from, err)
		}

		var events sdk.Events
		err := a.Deliver(hc.now, func(ctx sdk.Context) error {
			if err := fn(ctx, a.MsgServer(), hc.from); err != nil {
				return err
			}
			events = ctx.EventManager().Events()
			return nil
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, TxResult{
			Height: a.LastHeight(),
			Time:   hc.now.Format(time.RFC3339),
			Events: sdk.StringifyEvents(events.ToABCIEvents()),
		})
	})
}

func parseAmount(s string) (math.Uint, error) {
	amount, err := math.ParseUint(s)
	if err != nil {
		return math.Uint{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

func buyClubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy-club [club-name]",
		Short: "Buy a club, paying the club price into escrow",
		Long:  "Buy a club. A club that was released by its owner is bought from that owner with --seller, who gets their escrow back.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seller, _ := cmd.Flags().GetString(flagSeller)
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.BuyClub(ctx, types.NewMsgBuyClub(from, from, seller, args[0]))
				return err
			})
		},
	}
	cmd.Flags().String(flagSeller, "", "Current owner of a released club")
	return cmd
}

func releaseClubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release-club [club-name]",
		Short: "Put an owned club up for sale once its locking period is over",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.ReleaseClub(ctx, types.NewMsgReleaseClub(from, from, args[0]))
				return err
			})
		},
	}
}

func claimOwnerRewardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim-owner-rewards [club-name] [amount]",
		Short: "Claim part of the reward accrued to a club's owner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.ClaimOwnerRewards(ctx, types.NewMsgClaimOwnerRewards(from, from, args[0], amount))
				return err
			})
		},
	}
}

func claimPreviousOwnerRewardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim-previous-owner-rewards [club-name] [amount]",
		Short: "Claim reward still owed to the seller of a club",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.ClaimPreviousOwnerRewards(ctx, types.NewMsgClaimPreviousOwnerRewards(from, from, args[0], amount))
				return err
			})
		},
	}
}

func stakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stake [club-name] [amount]",
		Short: "Stake on an owned club",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.StakeOnClub(ctx, types.NewMsgStakeOnClub(from, from, args[0], amount))
				return err
			})
		},
	}
}

func withdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [club-name] [amount]",
		Short: "Withdraw stake into the bonding queue, or pay the fee and take it now with --immediate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			immediate, _ := cmd.Flags().GetBool(flagImmediate)
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.WithdrawStake(ctx, types.NewMsgWithdrawStake(from, from, args[0], amount, immediate))
				return err
			})
		},
	}
	cmd.Flags().Bool(flagImmediate, false, "Skip bonding and burn the withdrawal fee")
	return cmd
}

func claimRewardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim-rewards [club-name] [amount]",
		Short: "Claim part of a staker's accrued reward on a club",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.ClaimRewards(ctx, types.NewMsgClaimRewards(from, from, args[0], amount))
				return err
			})
		},
	}
}

func refundStakeoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refund-stakeouts",
		Short: "Pay out every bond whose bonding period is over (operator only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.PeriodicRefundStakeouts(ctx, types.NewMsgPeriodicRefundStakeouts(from))
				return err
			})
		},
	}
}

func setRewardAmountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-reward-amount [amount]",
		Short: "Set the reward pool for the next distribution (operator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.SetRewardAmount(ctx, types.NewMsgSetRewardAmount(from, amount))
				return err
			})
		},
	}
}

func distributeRewardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distribute-rewards",
		Short: "Rank clubs by stake and distribute the reward pool (operator only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deliver(cmd, func(ctx sdk.Context, ms types.MsgServer, from string) error {
				_, err := ms.CalculateAndDistributeRewards(ctx, types.NewMsgCalculateAndDistributeRewards(from))
				return err
			})
		},
	}
}

// mintCmd funds an account on the local ledger. With --module the coins go to
// the club module account, which is where reward claims are paid from.
func mintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint [address] [coins]",
		Short: "Create coins in an account",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			toModule, _ := cmd.Flags().GetBool(flagModule)
			var addr sdk.AccAddress
			coinsArg := args[len(args)-1]
			switch {
			case toModule && len(args) == 1:
				addr = authtypes.NewModuleAddress(types.ModuleName)
			case !toModule && len(args) == 2:
				parsed, err := sdk.AccAddressFromBech32(args[0])
				if err != nil {
					return err
				}
				addr = parsed
			default:
				return fmt.Errorf("expected [address] [coins], or [coins] with --%s", flagModule)
			}
			coins, err := sdk.ParseCoinsNormalized(coinsArg)
			if err != nil {
				return err
			}
			return withApp(cmd, func(hc hostContext, a *app.App) error {
				err := a.Deliver(hc.now, func(ctx sdk.Context) error {
					return a.Bank.MintCoins(ctx, addr, coins, "mint")
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, app.Balance{Address: addr.String(), Coins: coins})
			})
		},
	}
	cmd.Flags().Bool(flagModule, false, "Mint into the club module account")
	return cmd
}
