package types

import (
	"cosmossdk.io/math"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgStakeOnClub adds stake to a club. Repeated stakes by the same address merge.
type MsgStakeOnClub struct {
	Creator  string    `json:"creator"`
	Staker   string    `json:"staker"`
	ClubName string    `json:"club_name"`
	Amount   math.Uint `json:"amount"`
}

func NewMsgStakeOnClub(creator string, staker string, clubName string, amount math.Uint) *MsgStakeOnClub {
	return &MsgStakeOnClub{
		Creator:  creator,
		Staker:   staker,
		ClubName: clubName,
		Amount:   amount,
	}
}

func (msg *MsgStakeOnClub) ValidateBasic() error {
	return validateStakeMsg(msg.Creator, msg.Staker, msg.ClubName, msg.Amount)
}

// MsgWithdrawStake removes stake from a club, either paying it back at once
// minus the burn fee or moving it into the bonding ledger.
type MsgWithdrawStake struct {
	Creator             string    `json:"creator"`
	Staker              string    `json:"staker"`
	ClubName            string    `json:"club_name"`
	Amount              math.Uint `json:"amount"`
	ImmediateWithdrawal bool      `json:"immediate_withdrawal"`
}

func NewMsgWithdrawStake(creator string, staker string, clubName string, amount math.Uint, immediate bool) *MsgWithdrawStake {
	return &MsgWithdrawStake{
		Creator:             creator,
		Staker:              staker,
		ClubName:            clubName,
		Amount:              amount,
		ImmediateWithdrawal: immediate,
	}
}

func (msg *MsgWithdrawStake) ValidateBasic() error {
	return validateStakeMsg(msg.Creator, msg.Staker, msg.ClubName, msg.Amount)
}

func validateStakeMsg(creator string, staker string, clubName string, amount math.Uint) error {
	if _, err := sdk.AccAddressFromBech32(creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(staker); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid staker address (%s)", err)
	}
	if err := ValidateClubName(clubName); err != nil {
		return err
	}
	return validatePositiveAmount(amount)
}
