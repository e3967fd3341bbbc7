package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// GetClubStakes returns the stake list of a club. A club whose last staker
// withdrew keeps an empty list.
func (k Keeper) GetClubStakes(ctx context.Context, clubName string) ([]types.ClubStake, bool, error) {
	stakes, err := k.Stakes.Get(ctx, clubName)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storageErr(err, "read club stakes")
	}
	return stakes, true, nil
}

func (k Keeper) SetClubStakes(ctx context.Context, clubName string, stakes []types.ClubStake) error {
	if stakes == nil {
		stakes = []types.ClubStake{}
	}
	if err := k.Stakes.Set(ctx, clubName, stakes); err != nil {
		return storageErr(err, "write club stakes")
	}
	return nil
}

// GetAllStakes flattens every club's stakes, ordered by club name.
func (k Keeper) GetAllStakes(ctx context.Context) ([]types.ClubStake, error) {
	all := make([]types.ClubStake, 0)
	err := k.Stakes.Walk(ctx, nil, func(_ string, stakes []types.ClubStake) (bool, error) {
		all = append(all, stakes...)
		return false, nil
	})
	if err != nil {
		return nil, storageErr(err, "iterate club stakes")
	}
	return all, nil
}

// StakedClubs lists clubs that have a stake list, including lists emptied by
// withdrawals.
func (k Keeper) StakedClubs(ctx context.Context) ([]string, error) {
	iter, err := k.Stakes.Iterate(ctx, nil)
	if err != nil {
		return nil, storageErr(err, "iterate club stakes")
	}
	clubs, err := iter.Keys()
	if err != nil {
		return nil, storageErr(err, "iterate club stakes")
	}
	return clubs, nil
}

// findStake returns the index of staker's entry in stakes, or -1.
func findStake(stakes []types.ClubStake, staker string) int {
	for i, stake := range stakes {
		if stake.StakerAddress == staker {
			return i
		}
	}
	return -1
}

func totalStaked(stakes []types.ClubStake) math.Uint {
	total := math.ZeroUint()
	for _, stake := range stakes {
		total = total.Add(stake.StakedAmount)
	}
	return total
}

// addStake folds amount into staker's entry, creating it if needed. The
// staking reward is granted to new entries only.
func addStake(stakes []types.ClubStake, clubName, staker string, amount math.Uint, now uint64, params types.Params) []types.ClubStake {
	if i := findStake(stakes, staker); i >= 0 {
		stakes[i].StakedAmount = stakes[i].StakedAmount.Add(amount)
		return stakes
	}
	return append(stakes, types.ClubStake{
		ClubName:              clubName,
		StakerAddress:         staker,
		StakingStartTimestamp: now,
		StakedAmount:          amount,
		StakingDuration:       params.StakingDuration,
		RewardAmount:          params.StakingReward,
	})
}

// removeStake takes amount out of staker's entry and drops the entry once it
// reaches zero. The returned slice never aliases stakes.
func removeStake(stakes []types.ClubStake, staker string, amount math.Uint) ([]types.ClubStake, error) {
	i := findStake(stakes, staker)
	if i < 0 {
		return nil, types.ErrStakeNotFound.Wrapf("no stake from %s", staker)
	}
	if amount.GT(stakes[i].StakedAmount) {
		return nil, types.ErrInsufficientStake.Wrapf("staked %s, requested %s", stakes[i].StakedAmount, amount)
	}

	updated := make([]types.ClubStake, 0, len(stakes))
	for j, stake := range stakes {
		if j == i {
			stake.StakedAmount = stake.StakedAmount.Sub(amount)
			if stake.StakedAmount.IsZero() {
				continue
			}
		}
		updated = append(updated, stake)
	}
	return updated, nil
}
