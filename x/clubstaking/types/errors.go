package types

// DONTCOVER

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
)

// x/clubstaking module sentinel errors
var (
	ErrInvalidSigner = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrUnauthorized  = sdkerrors.Register(ModuleName, 1101, "unauthorized")
	ErrStorage       = sdkerrors.Register(ModuleName, 1102, "storage failure")

	// the referenced club lacks the ledger record the operation needs
	ErrNotAvailable               = sdkerrors.Register(ModuleName, 1110, "not available")
	ErrClubNotFound               = sdkerrors.Register(ModuleName, 1111, "club has no owner")
	ErrClubNotAvailableForStaking = sdkerrors.Register(ModuleName, 1112, "the club is not available for staking")
	ErrStakeNotFound              = sdkerrors.Register(ModuleName, 1113, "no stake found for staker")
	ErrPreviousOwnerNotFound      = sdkerrors.Register(ModuleName, 1114, "no previous owner found for club")

	// state-gated preconditions
	ErrInvalidState         = sdkerrors.Register(ModuleName, 1120, "invalid state")
	ErrOwnerNotReleased     = sdkerrors.Register(ModuleName, 1121, "owner has not released the club")
	ErrSellerNotOwner       = sdkerrors.Register(ModuleName, 1122, "seller is not the owner of the club")
	ErrReleaserNotOwner     = sdkerrors.Register(ModuleName, 1123, "releaser is not the owner of the club")
	ErrLockingPeriodNotOver = sdkerrors.Register(ModuleName, 1124, "locking period for the club is not over")
	ErrInsufficientRewards  = sdkerrors.Register(ModuleName, 1125, "insufficient rewards")
	ErrInsufficientStake    = sdkerrors.Register(ModuleName, 1126, "insufficient stake")
	ErrNotClubOwner         = sdkerrors.Register(ModuleName, 1127, "claimant is not the owner of the club")
	ErrNotPreviousOwner     = sdkerrors.Register(ModuleName, 1128, "claimant is not the previous owner of the club")

	ErrInvalidAmount   = sdkerrors.Register(ModuleName, 1130, "invalid amount")
	ErrInvalidClubName = sdkerrors.Register(ModuleName, 1131, "invalid club name")
	ErrSettlement      = sdkerrors.Register(ModuleName, 1132, "settlement failed")
)

// IsNotAvailable reports whether err belongs to the NotAvailable family.
func IsNotAvailable(err error) bool {
	return sdkerrors.IsOf(err,
		ErrNotAvailable,
		ErrClubNotFound,
		ErrClubNotAvailableForStaking,
		ErrStakeNotFound,
		ErrPreviousOwnerNotFound,
	)
}

// IsInvalidState reports whether err belongs to the InvalidState family.
func IsInvalidState(err error) bool {
	return sdkerrors.IsOf(err,
		ErrInvalidState,
		ErrOwnerNotReleased,
		ErrSellerNotOwner,
		ErrReleaserNotOwner,
		ErrLockingPeriodNotOver,
		ErrInsufficientRewards,
		ErrInsufficientStake,
		ErrNotClubOwner,
		ErrNotPreviousOwner,
	)
}

// WrapStorage marks err as a storage failure while what was being done.
// The cause stays reachable through errors.Is and errors.As.
func WrapStorage(err error, what string) error {
	return fmt.Errorf("%w: %w", ErrStorage.Wrap(what), err)
}
