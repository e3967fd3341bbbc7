package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k msgServer) ClaimPreviousOwnerRewards(goCtx context.Context, msg *types.MsgClaimPreviousOwnerRewards) (*types.MsgClaimPreviousOwnerRewardsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrapf(err, "invalid message")
	}
	previousOwnerAddr, err := actingAs(msg.Creator, msg.PreviousOwner, "previous owner")
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		previous, found, err := k.GetClubPreviousOwner(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		if !found {
			return types.ErrPreviousOwnerNotFound.Wrapf("club %s", msg.ClubName)
		}
		if previous.PreviousOwnerAddress != previousOwnerAddr.String() {
			return types.ErrNotPreviousOwner.Wrapf("club %s was sold by %s", msg.ClubName, previous.PreviousOwnerAddress)
		}
		if msg.Amount.GT(previous.RewardAmount) {
			return types.ErrInsufficientRewards.Wrapf("reward %s, requested %s", previous.RewardAmount, msg.Amount)
		}

		previous.RewardAmount = previous.RewardAmount.Sub(msg.Amount)
		if err := k.SetClubPreviousOwner(ctx, previous); err != nil {
			return err
		}
		if err := k.payReward(ctx, params, previousOwnerAddr, msg.Amount, "previous owner reward claim"); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeClaimPreviousOwnerRewards,
				sdk.NewAttribute(types.AttributeKeyClubName, msg.ClubName),
				sdk.NewAttribute(types.AttributeKeyOwner, previous.PreviousOwnerAddress),
				sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.LogInfo("previous owner reward claimed", types.Rewards, "club", msg.ClubName, "previous_owner", msg.PreviousOwner, "amount", msg.Amount.String())

	return &types.MsgClaimPreviousOwnerRewardsResponse{}, nil
}
