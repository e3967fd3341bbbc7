package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// SetRewardAmount replaces the reward pool. The operator pays the new pool
// into the rewards account and gets back whatever was left of the old one.
func (k msgServer) SetRewardAmount(goCtx context.Context, msg *types.MsgSetRewardAmount) (*types.MsgSetRewardAmountResponse, error) {
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
	operatorAddr, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "invalid creator address: %s", msg.Creator)
	}

	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		previous, err := k.GetRewardPool(ctx)
		if err != nil {
			return err
		}
		if err := k.SetRewardPool(ctx, msg.Amount); err != nil {
			return err
		}
		if err := k.payReward(ctx, params, operatorAddr, previous, "reward pool replaced"); err != nil {
			return err
		}
		if err := k.fundRewards(ctx, params, operatorAddr, msg.Amount, "reward pool funding"); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSetRewardAmount,
				sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.LogInfo("reward pool set", types.Rewards, "amount", msg.Amount.String())

	return &types.MsgSetRewardAmountResponse{}, nil
}
