package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// PeriodicRefundStakeouts pays out every bond whose bonding period has
// elapsed and keeps the rest.
func (k msgServer) PeriodicRefundStakeouts(goCtx context.Context, msg *types.MsgPeriodicRefundStakeouts) (*types.MsgPeriodicRefundStakeoutsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrapf(err, "invalid message")
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireOperator(params, msg.Creator); err != nil {
		return nil, err
	}

	matured, remaining := 0, 0
	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		now := BlockTimestamp(ctx)
		clubs, err := k.BondedClubs(ctx)
		if err != nil {
			return err
		}
		for _, clubName := range clubs {
			bonds, _, err := k.GetClubBonds(ctx, clubName)
			if err != nil {
				return err
			}
			kept := make([]types.ClubBond, 0, len(bonds))
			for _, bond := range bonds {
				if !bond.IsMatured(now) {
					kept = append(kept, bond)
					continue
				}
				if err := k.refundBond(ctx, params, bond); err != nil {
					return err
				}
				matured++
			}
			if err := k.SetClubBonds(ctx, clubName, kept); err != nil {
				return err
			}
			remaining += len(kept)
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRefundStakeouts,
				sdk.NewAttribute(types.AttributeKeyMaturedBonds, strconv.Itoa(matured)),
				sdk.NewAttribute(types.AttributeKeyRemainingBond, strconv.Itoa(remaining)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.LogInfo("stakeouts refunded", types.Bonding, "matured", matured, "remaining", remaining)

	return &types.MsgPeriodicRefundStakeoutsResponse{}, nil
}

func (k Keeper) refundBond(ctx sdk.Context, params types.Params, bond types.ClubBond) error {
	bonderAddr, err := sdk.AccAddressFromBech32(bond.BonderAddress)
	if err != nil {
		return types.ErrInvalidState.Wrapf("bond on club %s has invalid bonder %s", bond.ClubName, bond.BonderAddress)
	}
	k.logRelease(ctx, params, bond.BonderAddress, types.SubAccountBonding, bond.BondedAmount, "bonding matured")
	if err := k.pay(ctx, params, bonderAddr, bond.BondedAmount, "stakeout refund"); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRefundStakeout,
			sdk.NewAttribute(types.AttributeKeyClubName, bond.ClubName),
			sdk.NewAttribute(types.AttributeKeyStaker, bond.BonderAddress),
			sdk.NewAttribute(types.AttributeKeyAmount, bond.BondedAmount.String()),
		),
	)
	return nil
}
