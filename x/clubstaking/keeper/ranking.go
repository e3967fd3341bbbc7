package keeper

import (
	"context"
	"sort"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// RankClubsByStake orders clubs by total stake, highest first. Ties go to the
// lexicographically smaller club name. Clubs with nothing staked are left out.
func (k Keeper) RankClubsByStake(ctx context.Context) ([]types.ClubRanking, error) {
	ranking := make([]types.ClubRanking, 0)
	err := k.Stakes.Walk(ctx, nil, func(clubName string, stakes []types.ClubStake) (bool, error) {
		total := totalStaked(stakes)
		if !total.IsZero() {
			ranking = append(ranking, types.ClubRanking{ClubName: clubName, TotalStaked: total})
		}
		return false, nil
	})
	if err != nil {
		return nil, storageErr(err, "iterate club stakes")
	}
	sortRanking(ranking)
	return ranking, nil
}

func sortRanking(ranking []types.ClubRanking) {
	sort.SliceStable(ranking, func(i, j int) bool {
		if !ranking[i].TotalStaked.Equal(ranking[j].TotalStaked) {
			return ranking[i].TotalStaked.GT(ranking[j].TotalStaked)
		}
		return ranking[i].ClubName < ranking[j].ClubName
	})
}
