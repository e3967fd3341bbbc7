package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// RegisterInvariants registers all clubstaking invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "stakes", StakesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "bonds", BondsInvariant(k))
}

// AllInvariants runs all invariants of the clubstaking module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := StakesInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return BondsInvariant(k)(ctx)
	}
}

// StakesInvariant checks that every stake sits on an owned club under its own
// key, that a staker appears at most once per club, and that no zero stake is kept.
func StakesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken int
		)
		err := k.Stakes.Walk(ctx, nil, func(clubName string, stakes []types.ClubStake) (bool, error) {
			if len(stakes) > 0 {
				if _, owned, err := k.GetClubOwnership(ctx, clubName); err != nil {
					return true, err
				} else if !owned {
					broken++
					msg += fmt.Sprintf("\tclub %s has stakes but no owner\n", clubName)
				}
			}
			seen := make(map[string]struct{}, len(stakes))
			for _, stake := range stakes {
				if stake.ClubName != clubName {
					broken++
					msg += fmt.Sprintf("\tstake of %s filed under %s names club %s\n", stake.StakerAddress, clubName, stake.ClubName)
				}
				if _, dup := seen[stake.StakerAddress]; dup {
					broken++
					msg += fmt.Sprintf("\tstaker %s appears twice on club %s\n", stake.StakerAddress, clubName)
				}
				seen[stake.StakerAddress] = struct{}{}
				if stake.StakedAmount.IsZero() {
					broken++
					msg += fmt.Sprintf("\tstaker %s keeps a zero stake on club %s\n", stake.StakerAddress, clubName)
				}
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "stakes", fmt.Sprintf("\tfailed to read stakes: %s\n", err)), true
		}

		return sdk.FormatInvariant(types.ModuleName, "stakes",
			fmt.Sprintf("found %d broken stake entries\n%s", broken, msg)), broken != 0
	}
}

// BondsInvariant checks that every bond is filed under its own club and carries a positive amount.
func BondsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken int
		)
		err := k.Bonds.Walk(ctx, nil, func(clubName string, bonds []types.ClubBond) (bool, error) {
			for _, bond := range bonds {
				if bond.ClubName != clubName {
					broken++
					msg += fmt.Sprintf("\tbond of %s filed under %s names club %s\n", bond.BonderAddress, clubName, bond.ClubName)
				}
				if bond.BondedAmount.IsZero() {
					broken++
					msg += fmt.Sprintf("\tbond of %s on club %s is empty\n", bond.BonderAddress, clubName)
				}
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "bonds", fmt.Sprintf("\tfailed to read bonds: %s\n", err)), true
		}

		return sdk.FormatInvariant(types.ModuleName, "bonds",
			fmt.Sprintf("found %d broken bond entries\n%s", broken, msg)), broken != 0
	}
}
