package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgReleaseClub lets the owner put the club up for resale once the locking period is over.
type MsgReleaseClub struct {
	Creator  string `json:"creator"`
	Owner    string `json:"owner"`
	ClubName string `json:"club_name"`
}

func NewMsgReleaseClub(creator string, owner string, clubName string) *MsgReleaseClub {
	return &MsgReleaseClub{
		Creator:  creator,
		Owner:    owner,
		ClubName: clubName,
	}
}

func (msg *MsgReleaseClub) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address (%s)", err)
	}
	return ValidateClubName(msg.ClubName)
}
