package types

import (
	"cosmossdk.io/math"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgClaimOwnerRewards pays out part of the current owner's accrued reward.
type MsgClaimOwnerRewards struct {
	Creator  string    `json:"creator"`
	Owner    string    `json:"owner"`
	ClubName string    `json:"club_name"`
	Amount   math.Uint `json:"amount"`
}

func NewMsgClaimOwnerRewards(creator string, owner string, clubName string, amount math.Uint) *MsgClaimOwnerRewards {
	return &MsgClaimOwnerRewards{
		Creator:  creator,
		Owner:    owner,
		ClubName: clubName,
		Amount:   amount,
	}
}

func (msg *MsgClaimOwnerRewards) ValidateBasic() error {
	return validateClaim(msg.Creator, msg.Owner, "owner", msg.ClubName, msg.Amount)
}

// MsgClaimPreviousOwnerRewards pays out reward still owed to the seller of a club.
type MsgClaimPreviousOwnerRewards struct {
	Creator       string    `json:"creator"`
	PreviousOwner string    `json:"previous_owner"`
	ClubName      string    `json:"club_name"`
	Amount        math.Uint `json:"amount"`
}

func NewMsgClaimPreviousOwnerRewards(creator string, previousOwner string, clubName string, amount math.Uint) *MsgClaimPreviousOwnerRewards {
	return &MsgClaimPreviousOwnerRewards{
		Creator:       creator,
		PreviousOwner: previousOwner,
		ClubName:      clubName,
		Amount:        amount,
	}
}

func (msg *MsgClaimPreviousOwnerRewards) ValidateBasic() error {
	return validateClaim(msg.Creator, msg.PreviousOwner, "previous owner", msg.ClubName, msg.Amount)
}

// MsgClaimRewards pays out part of a staker's accrued reward on a club.
type MsgClaimRewards struct {
	Creator  string    `json:"creator"`
	Staker   string    `json:"staker"`
	ClubName string    `json:"club_name"`
	Amount   math.Uint `json:"amount"`
}

func NewMsgClaimRewards(creator string, staker string, clubName string, amount math.Uint) *MsgClaimRewards {
	return &MsgClaimRewards{
		Creator:  creator,
		Staker:   staker,
		ClubName: clubName,
		Amount:   amount,
	}
}

func (msg *MsgClaimRewards) ValidateBasic() error {
	return validateClaim(msg.Creator, msg.Staker, "staker", msg.ClubName, msg.Amount)
}

func validateClaim(creator string, claimant string, role string, clubName string, amount math.Uint) error {
	if _, err := sdk.AccAddressFromBech32(creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(claimant); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s address (%s)", role, err)
	}
	if err := ValidateClubName(clubName); err != nil {
		return err
	}
	return validatePositiveAmount(amount)
}

func validatePositiveAmount(amount math.Uint) error {
	if amount.IsNil() {
		return ErrInvalidAmount.Wrap("amount must be set")
	}
	if amount.IsZero() {
		return ErrInvalidAmount.Wrap("amount cannot be zero")
	}
	return nil
}
