package clubstaking

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/keeper"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, elem := range genState.OwnershipList {
		if err := k.SetClubOwnership(ctx, elem); err != nil {
			panic(err)
		}
	}

	for _, elem := range genState.PreviousOwnerList {
		if err := k.SetClubPreviousOwner(ctx, elem); err != nil {
			panic(err)
		}
	}

	// stakes and bonds are exported flat, regroup them per club keeping their order
	stakesByClub := make(map[string][]types.ClubStake)
	var stakeClubs []string
	for _, elem := range genState.StakeList {
		if _, ok := stakesByClub[elem.ClubName]; !ok {
			stakeClubs = append(stakeClubs, elem.ClubName)
		}
		stakesByClub[elem.ClubName] = append(stakesByClub[elem.ClubName], elem)
	}
	for _, club := range stakeClubs {
		if err := k.SetClubStakes(ctx, club, stakesByClub[club]); err != nil {
			panic(err)
		}
	}

	for _, elem := range genState.BondList {
		if err := k.AppendClubBond(ctx, elem); err != nil {
			panic(err)
		}
	}

	for _, club := range genState.StakedClubs {
		if _, found, err := k.GetClubStakes(ctx, club); err != nil {
			panic(err)
		} else if !found {
			if err := k.SetClubStakes(ctx, club, nil); err != nil {
				panic(err)
			}
		}
	}
	for _, club := range genState.BondedClubs {
		if _, found, err := k.GetClubBonds(ctx, club); err != nil {
			panic(err)
		} else if !found {
			if err := k.SetClubBonds(ctx, club, nil); err != nil {
				panic(err)
			}
		}
	}

	for _, elem := range genState.EscrowList {
		addr, err := sdk.AccAddressFromBech32(elem.Address)
		if err != nil {
			panic(err)
		}
		if err := k.SetEscrow(ctx, addr, elem.Amount); err != nil {
			panic(err)
		}
	}

	if err := k.SetRewardPool(ctx, genState.RewardPool); err != nil {
		panic(err)
	}
	if genState.LastDistribution != nil {
		if err := k.SetLastDistribution(ctx, *genState.LastDistribution); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	var err error
	genesis := types.DefaultGenesis()

	if genesis.Params, err = k.GetParams(ctx); err != nil {
		panic(err)
	}
	if genesis.OwnershipList, err = k.GetAllClubOwnerships(ctx); err != nil {
		panic(err)
	}
	if genesis.PreviousOwnerList, err = k.GetAllClubPreviousOwners(ctx); err != nil {
		panic(err)
	}
	if genesis.StakeList, err = k.GetAllStakes(ctx); err != nil {
		panic(err)
	}
	if genesis.BondList, err = k.GetAllBonds(ctx); err != nil {
		panic(err)
	}
	if genesis.StakedClubs, err = k.StakedClubs(ctx); err != nil {
		panic(err)
	}
	if genesis.BondedClubs, err = k.BondedClubs(ctx); err != nil {
		panic(err)
	}
	if genesis.EscrowList, err = k.GetAllEscrow(ctx); err != nil {
		panic(err)
	}
	if genesis.RewardPool, err = k.GetRewardPool(ctx); err != nil {
		panic(err)
	}

	record, found, err := k.GetLastDistribution(ctx)
	if err != nil {
		panic(err)
	}
	if found {
		genesis.LastDistribution = &record
	}

	return genesis
}
