package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k msgServer) ClaimRewards(goCtx context.Context, msg *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
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
		stakes, _, err := k.GetClubStakes(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		i := findStake(stakes, stakerAddr.String())
		if i < 0 {
			return types.ErrStakeNotFound.Wrapf("no stake from %s on club %s", msg.Staker, msg.ClubName)
		}
		if msg.Amount.GT(stakes[i].RewardAmount) {
			return types.ErrInsufficientRewards.Wrapf("reward %s, requested %s", stakes[i].RewardAmount, msg.Amount)
		}

		stakes[i].RewardAmount = stakes[i].RewardAmount.Sub(msg.Amount)
		if err := k.SetClubStakes(ctx, msg.ClubName, stakes); err != nil {
			return err
		}
		if err := k.payReward(ctx, params, stakerAddr, msg.Amount, "staking reward claim"); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeClaimRewards,
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

	k.LogInfo("staking reward claimed", types.Rewards, "club", msg.ClubName, "staker", msg.Staker, "amount", msg.Amount.String())

	return &types.MsgClaimRewardsResponse{}, nil
}
