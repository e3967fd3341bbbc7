package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// GetClubOwnership returns the ownership record of a club, if it was ever bought.
func (k Keeper) GetClubOwnership(ctx context.Context, clubName string) (types.ClubOwnership, bool, error) {
	ownership, err := k.Ownerships.Get(ctx, clubName)
	if errors.Is(err, collections.ErrNotFound) {
		return types.ClubOwnership{}, false, nil
	}
	if err != nil {
		return types.ClubOwnership{}, false, storageErr(err, "read club ownership")
	}
	return ownership, true, nil
}

func (k Keeper) SetClubOwnership(ctx context.Context, ownership types.ClubOwnership) error {
	if err := k.Ownerships.Set(ctx, ownership.ClubName, ownership); err != nil {
		return storageErr(err, "write club ownership")
	}
	return nil
}

// GetAllClubOwnerships returns every ownership record ordered by club name.
func (k Keeper) GetAllClubOwnerships(ctx context.Context) ([]types.ClubOwnership, error) {
	iter, err := k.Ownerships.Iterate(ctx, nil)
	if err != nil {
		return nil, storageErr(err, "iterate club ownership")
	}
	ownerships, err := iter.Values()
	if err != nil {
		return nil, storageErr(err, "iterate club ownership")
	}
	return ownerships, nil
}

// GetClubPreviousOwner returns the reward record of the seller of a club.
func (k Keeper) GetClubPreviousOwner(ctx context.Context, clubName string) (types.ClubPreviousOwner, bool, error) {
	previous, err := k.PreviousOwners.Get(ctx, clubName)
	if errors.Is(err, collections.ErrNotFound) {
		return types.ClubPreviousOwner{}, false, nil
	}
	if err != nil {
		return types.ClubPreviousOwner{}, false, storageErr(err, "read previous owner")
	}
	return previous, true, nil
}

func (k Keeper) SetClubPreviousOwner(ctx context.Context, previous types.ClubPreviousOwner) error {
	if err := k.PreviousOwners.Set(ctx, previous.ClubName, previous); err != nil {
		return storageErr(err, "write previous owner")
	}
	return nil
}

func (k Keeper) GetAllClubPreviousOwners(ctx context.Context) ([]types.ClubPreviousOwner, error) {
	iter, err := k.PreviousOwners.Iterate(ctx, nil)
	if err != nil {
		return nil, storageErr(err, "iterate previous owners")
	}
	previous, err := iter.Values()
	if err != nil {
		return nil, storageErr(err, "iterate previous owners")
	}
	return previous, nil
}
