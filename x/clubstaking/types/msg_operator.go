package types

import (
	"cosmossdk.io/math"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgPeriodicRefundStakeouts sweeps matured bonds across all clubs.
type MsgPeriodicRefundStakeouts struct {
	Creator string `json:"creator"`
}

func NewMsgPeriodicRefundStakeouts(creator string) *MsgPeriodicRefundStakeouts {
	return &MsgPeriodicRefundStakeouts{Creator: creator}
}

func (msg *MsgPeriodicRefundStakeouts) ValidateBasic() error {
	return validateCreator(msg.Creator)
}

// MsgSetRewardAmount overwrites the reward pool used by the next distribution.
type MsgSetRewardAmount struct {
	Creator string    `json:"creator"`
	Amount  math.Uint `json:"amount"`
}

func NewMsgSetRewardAmount(creator string, amount math.Uint) *MsgSetRewardAmount {
	return &MsgSetRewardAmount{
		Creator: creator,
		Amount:  amount,
	}
}

func (msg *MsgSetRewardAmount) ValidateBasic() error {
	if err := validateCreator(msg.Creator); err != nil {
		return err
	}
	// zero is allowed, it disables the next distribution
	if msg.Amount.IsNil() {
		return ErrInvalidAmount.Wrap("amount must be set")
	}
	return nil
}

// MsgCalculateAndDistributeRewards splits the reward pool across the top club and all stakers.
type MsgCalculateAndDistributeRewards struct {
	Creator string `json:"creator"`
}

func NewMsgCalculateAndDistributeRewards(creator string) *MsgCalculateAndDistributeRewards {
	return &MsgCalculateAndDistributeRewards{Creator: creator}
}

func (msg *MsgCalculateAndDistributeRewards) ValidateBasic() error {
	return validateCreator(msg.Creator)
}

func validateCreator(creator string) error {
	if _, err := sdk.AccAddressFromBech32(creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	return nil
}
