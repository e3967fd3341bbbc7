package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k Keeper) GetRewardPool(ctx context.Context) (math.Uint, error) {
	pool, err := k.RewardPoolItem.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroUint(), nil
	}
	if err != nil {
		return math.ZeroUint(), storageErr(err, "read reward pool")
	}
	return pool, nil
}

func (k Keeper) SetRewardPool(ctx context.Context, amount math.Uint) error {
	if err := k.RewardPoolItem.Set(ctx, amount); err != nil {
		return storageErr(err, "write reward pool")
	}
	return nil
}

func (k Keeper) GetLastDistribution(ctx context.Context) (types.DistributionRecord, bool, error) {
	record, err := k.LastDistributionItem.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DistributionRecord{}, false, nil
	}
	if err != nil {
		return types.DistributionRecord{}, false, storageErr(err, "read last distribution")
	}
	return record, true, nil
}

func (k Keeper) SetLastDistribution(ctx context.Context, record types.DistributionRecord) error {
	if err := k.LastDistributionItem.Set(ctx, record); err != nil {
		return storageErr(err, "write last distribution")
	}
	return nil
}

func percentOf(amount math.Uint, percent uint64) math.Uint {
	return amount.MulUint64(percent).QuoUint64(100)
}

// rewardAllocation is the outcome of splitting a pool, before it is written.
type rewardAllocation struct {
	record types.DistributionRecord
	// stakes holds the updated stake lists of every ranked club
	stakes map[string][]types.ClubStake
}

// allocateRewards splits pool between the winning club's owner, the winning
// club's stakers and all stakers. Each share is floored on its own, so the
// distributed total never exceeds the pool. ranking must be non-empty and
// sorted, and stakesByClub must hold the stakes of every ranked club.
func allocateRewards(pool math.Uint, params types.Params, ranking []types.ClubRanking, stakesByClub map[string][]types.ClubStake) rewardAllocation {
	winner := ranking[0]
	grandTotal := math.ZeroUint()
	for _, club := range ranking {
		grandTotal = grandTotal.Add(club.TotalStaked)
	}

	ownerReward := percentOf(pool, params.OwnerBonusPercent)
	winnerPool := percentOf(pool, params.WinnerStakersPercent)
	allPool := percentOf(pool, params.AllStakersPercent)

	winnerPaid := math.ZeroUint()
	allPaid := math.ZeroUint()
	updated := make(map[string][]types.ClubStake, len(ranking))
	for _, club := range ranking {
		stakes := stakesByClub[club.ClubName]
		out := make([]types.ClubStake, len(stakes))
		for i, stake := range stakes {
			share := allPool.Mul(stake.StakedAmount).Quo(grandTotal)
			allPaid = allPaid.Add(share)
			if club.ClubName == winner.ClubName {
				winnerShare := winnerPool.Mul(stake.StakedAmount).Quo(winner.TotalStaked)
				winnerPaid = winnerPaid.Add(winnerShare)
				share = share.Add(winnerShare)
			}
			stake.RewardAmount = stake.RewardAmount.Add(share)
			out[i] = stake
		}
		updated[club.ClubName] = out
	}

	return rewardAllocation{
		record: types.DistributionRecord{
			WinnerClub:          winner.ClubName,
			Pool:                pool,
			OwnerReward:         ownerReward,
			WinnerStakersReward: winnerPaid,
			AllStakersReward:    allPaid,
			Distributed:         ownerReward.Add(winnerPaid).Add(allPaid),
		},
		stakes: updated,
	}
}
