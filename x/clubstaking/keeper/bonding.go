package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k Keeper) GetClubBonds(ctx context.Context, clubName string) ([]types.ClubBond, bool, error) {
	bonds, err := k.Bonds.Get(ctx, clubName)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storageErr(err, "read club bonds")
	}
	return bonds, true, nil
}

func (k Keeper) SetClubBonds(ctx context.Context, clubName string, bonds []types.ClubBond) error {
	if bonds == nil {
		bonds = []types.ClubBond{}
	}
	if err := k.Bonds.Set(ctx, clubName, bonds); err != nil {
		return storageErr(err, "write club bonds")
	}
	return nil
}

// AppendClubBond records a deferred withdrawal. A staker may hold several
// bonds on the same club.
func (k Keeper) AppendClubBond(ctx context.Context, bond types.ClubBond) error {
	bonds, _, err := k.GetClubBonds(ctx, bond.ClubName)
	if err != nil {
		return err
	}
	return k.SetClubBonds(ctx, bond.ClubName, append(bonds, bond))
}

// GetAllBonds flattens every club's bonds, ordered by club name.
func (k Keeper) GetAllBonds(ctx context.Context) ([]types.ClubBond, error) {
	all := make([]types.ClubBond, 0)
	err := k.Bonds.Walk(ctx, nil, func(_ string, bonds []types.ClubBond) (bool, error) {
		all = append(all, bonds...)
		return false, nil
	})
	if err != nil {
		return nil, storageErr(err, "iterate club bonds")
	}
	return all, nil
}

// BondedClubs lists clubs that have a bond list, empty or not, so callers can
// rewrite the lists without mutating the map mid-iteration.
func (k Keeper) BondedClubs(ctx context.Context) ([]string, error) {
	iter, err := k.Bonds.Iterate(ctx, nil)
	if err != nil {
		return nil, storageErr(err, "iterate club bonds")
	}
	clubs, err := iter.Keys()
	if err != nil {
		return nil, storageErr(err, "iterate club bonds")
	}
	return clubs, nil
}
