package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k msgServer) StakeOnClub(goCtx context.Context, msg *types.MsgStakeOnClub) (*types.MsgStakeOnClubResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrapf(err, "invalid message")
	}
	stakerAddr, err := actingAs(msg.Creator, msg.Staker, "staker")
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		// any club that was ever bought takes stakes, released or not
		_, owned, err := k.GetClubOwnership(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		if !owned {
			return types.ErrClubNotAvailableForStaking.Wrapf("club %s has no owner", msg.ClubName)
		}

		stakes, _, err := k.GetClubStakes(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		stakes = addStake(stakes, msg.ClubName, stakerAddr.String(), msg.Amount, BlockTimestamp(ctx), params)
		if err := k.SetClubStakes(ctx, msg.ClubName, stakes); err != nil {
			return err
		}
		if err := k.creditEscrow(ctx, stakerAddr, msg.Amount); err != nil {
			return err
		}
		if err := k.collect(ctx, params, stakerAddr, msg.Amount, "club stake"); err != nil {
			return err
		}
		k.logHold(ctx, params, stakerAddr.String(), types.SubAccountEscrow, msg.Amount, "club stake")

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeStakeOnClub,
				sdk.NewAttribute(types.AttributeKeyClubName, msg.ClubName),
				sdk.NewAttribute(types.AttributeKeyStaker, stakerAddr.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.LogInfo("stake placed", types.Staking, "club", msg.ClubName, "staker", msg.Staker, "amount", msg.Amount.String())

	return &types.MsgStakeOnClubResponse{}, nil
}
