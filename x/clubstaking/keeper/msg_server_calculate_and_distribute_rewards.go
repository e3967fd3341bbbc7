package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// CalculateAndDistributeRewards credits the reward pool to the owner and
// stakers of the top-ranked club and to all stakers, then empties the pool.
func (k msgServer) CalculateAndDistributeRewards(goCtx context.Context, msg *types.MsgCalculateAndDistributeRewards) (*types.MsgCalculateAndDistributeRewardsResponse, error) {
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

	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		return k.distributeRewards(ctx, params)
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgCalculateAndDistributeRewardsResponse{}, nil
}

func (k Keeper) distributeRewards(ctx sdk.Context, params types.Params) error {
	pool, err := k.GetRewardPool(ctx)
	if err != nil {
		return err
	}
	if pool.IsZero() {
		k.LogDebug("reward pool is empty, nothing to distribute", types.Rewards)
		return nil
	}

	ranking, err := k.RankClubsByStake(ctx)
	if err != nil {
		return err
	}
	if len(ranking) == 0 {
		k.LogDebug("no staked clubs, nothing to distribute", types.Rewards, "pool", pool.String())
		return nil
	}

	winner := ranking[0]
	ownership, found, err := k.GetClubOwnership(ctx, winner.ClubName)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrClubNotFound.Wrapf("winning club %s has no owner", winner.ClubName)
	}

	stakesByClub := make(map[string][]types.ClubStake, len(ranking))
	for _, club := range ranking {
		stakes, _, err := k.GetClubStakes(ctx, club.ClubName)
		if err != nil {
			return err
		}
		stakesByClub[club.ClubName] = stakes
	}

	allocation := allocateRewards(pool, params, ranking, stakesByClub)
	allocation.record.Timestamp = BlockTimestamp(ctx)

	ownership.RewardAmount = ownership.RewardAmount.Add(allocation.record.OwnerReward)
	if err := k.SetClubOwnership(ctx, ownership); err != nil {
		return err
	}
	for _, club := range ranking {
		if err := k.SetClubStakes(ctx, club.ClubName, allocation.stakes[club.ClubName]); err != nil {
			return err
		}
	}
	if err := k.SetLastDistribution(ctx, allocation.record); err != nil {
		return err
	}
	if err := k.SetRewardPool(ctx, math.ZeroUint()); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDistributeRewards,
			sdk.NewAttribute(types.AttributeKeyWinnerClub, winner.ClubName),
			sdk.NewAttribute(types.AttributeKeyAmount, pool.String()),
			sdk.NewAttribute(types.AttributeKeyDistributed, allocation.record.Distributed.String()),
		),
	)
	k.LogInfo("rewards distributed", types.Rewards,
		"winner", winner.ClubName,
		"winner_total", winner.TotalStaked.String(),
		"pool", pool.String(),
		"distributed", allocation.record.Distributed.String(),
		"undistributed", allocation.record.Undistributed().String(),
	)
	return nil
}
