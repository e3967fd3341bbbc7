package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgBuyClub takes ownership of a club. Seller is empty on a first purchase.
type MsgBuyClub struct {
	Creator  string `json:"creator"`
	Buyer    string `json:"buyer"`
	Seller   string `json:"seller"`
	ClubName string `json:"club_name"`
}

func NewMsgBuyClub(creator string, buyer string, seller string, clubName string) *MsgBuyClub {
	return &MsgBuyClub{
		Creator:  creator,
		Buyer:    buyer,
		Seller:   seller,
		ClubName: clubName,
	}
}

func (msg *MsgBuyClub) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid buyer address (%s)", err)
	}
	if msg.Seller != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid seller address (%s)", err)
		}
	}
	return ValidateClubName(msg.ClubName)
}
