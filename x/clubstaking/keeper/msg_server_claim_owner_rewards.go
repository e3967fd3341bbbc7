package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k msgServer) ClaimOwnerRewards(goCtx context.Context, msg *types.MsgClaimOwnerRewards) (*types.MsgClaimOwnerRewardsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrapf(err, "invalid message")
	}
	ownerAddr, err := actingAs(msg.Creator, msg.Owner, "owner")
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		ownership, found, err := k.GetClubOwnership(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		if !found {
			return types.ErrClubNotFound.Wrapf("club %s", msg.ClubName)
		}
		if ownership.OwnerAddress != ownerAddr.String() {
			return types.ErrNotClubOwner.Wrapf("club %s is owned by %s", msg.ClubName, ownership.OwnerAddress)
		}
		if msg.Amount.GT(ownership.RewardAmount) {
			return types.ErrInsufficientRewards.Wrapf("reward %s, requested %s", ownership.RewardAmount, msg.Amount)
		}

		ownership.RewardAmount = ownership.RewardAmount.Sub(msg.Amount)
		if err := k.SetClubOwnership(ctx, ownership); err != nil {
			return err
		}
		if err := k.payReward(ctx, params, ownerAddr, msg.Amount, "owner reward claim"); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeClaimOwnerRewards,
				sdk.NewAttribute(types.AttributeKeyClubName, msg.ClubName),
				sdk.NewAttribute(types.AttributeKeyOwner, ownership.OwnerAddress),
				sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.LogInfo("owner reward claimed", types.Rewards, "club", msg.ClubName, "owner", msg.Owner, "amount", msg.Amount.String())

	return &types.MsgClaimOwnerRewardsResponse{}, nil
}
