package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k msgServer) BuyClub(goCtx context.Context, msg *types.MsgBuyClub) (*types.MsgBuyClubResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrapf(err, "invalid message")
	}
	buyerAddr, err := actingAs(msg.Creator, msg.Buyer, "buyer")
	if err != nil {
		return nil, err
	}
	var sellerAddr sdk.AccAddress
	if msg.Seller != "" {
		if sellerAddr, err = sdk.AccAddressFromBech32(msg.Seller); err != nil {
			return nil, errorsmod.Wrapf(err, "invalid seller address: %s", msg.Seller)
		}
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		previous, found, err := k.GetClubOwnership(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		previousReward, previousPrice := math.ZeroUint(), math.ZeroUint()
		switch {
		case found && !previous.Released:
			return types.ErrOwnerNotReleased.Wrapf("club %s is held by %s", msg.ClubName, previous.OwnerAddress)
		case found && sellerAddr != nil && previous.OwnerAddress != sellerAddr.String():
			return types.ErrSellerNotOwner.Wrapf("club %s is owned by %s, not %s", msg.ClubName, previous.OwnerAddress, msg.Seller)
		case !found && sellerAddr != nil:
			return types.ErrSellerNotOwner.Wrapf("club %s has never been owned", msg.ClubName)
		case found:
			previousReward = previous.RewardAmount
			previousPrice = previous.PricePaid
		}

		ownership := types.ClubOwnership{
			ClubName:       msg.ClubName,
			StartTimestamp: BlockTimestamp(ctx),
			LockingPeriod:  params.LockingPeriod,
			OwnerAddress:   buyerAddr.String(),
			PricePaid:      params.ClubPrice,
			RewardAmount:   params.BuyingReward,
			Released:       false,
		}
		if err := k.SetClubOwnership(ctx, ownership); err != nil {
			return err
		}
		if err := k.creditEscrow(ctx, buyerAddr, params.ClubPrice); err != nil {
			return err
		}
		if err := k.collect(ctx, params, buyerAddr, params.ClubPrice, "club purchase"); err != nil {
			return err
		}
		k.logHold(ctx, params, buyerAddr.String(), types.SubAccountEscrow, params.ClubPrice, "club purchase")

		if sellerAddr != nil {
			refund, err := k.releasePurchaseEscrow(ctx, sellerAddr, previousPrice)
			if err != nil {
				return err
			}
			if err := k.pay(ctx, params, sellerAddr, refund, "club sale"); err != nil {
				return err
			}
			k.logRelease(ctx, params, sellerAddr.String(), types.SubAccountEscrow, refund, "club sale")

			if err := k.SetClubPreviousOwner(ctx, types.ClubPreviousOwner{
				ClubName:             msg.ClubName,
				PreviousOwnerAddress: sellerAddr.String(),
				RewardAmount:         previousReward,
			}); err != nil {
				return err
			}
		}

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeBuyClub,
				sdk.NewAttribute(types.AttributeKeyClubName, msg.ClubName),
				sdk.NewAttribute(types.AttributeKeyBuyer, buyerAddr.String()),
				sdk.NewAttribute(types.AttributeKeySeller, msg.Seller),
				sdk.NewAttribute(types.AttributeKeyAmount, params.ClubPrice.String()),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.LogInfo("club bought", types.Ownership,
		"club", msg.ClubName,
		"buyer", msg.Buyer,
		"seller", msg.Seller,
		"price", params.ClubPrice.String(),
	)

	return &types.MsgBuyClubResponse{}, nil
}
