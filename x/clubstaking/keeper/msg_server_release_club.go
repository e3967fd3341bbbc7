package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k msgServer) ReleaseClub(goCtx context.Context, msg *types.MsgReleaseClub) (*types.MsgReleaseClubResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrapf(err, "invalid message")
	}
	ownerAddr, err := actingAs(msg.Creator, msg.Owner, "owner")
	if err != nil {
		return nil, err
	}

	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		ownership, found, err := k.GetClubOwnership(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		if !found {
			return types.ErrClubNotFound.Wrapf("club %s", msg.ClubName)
		}
		if ownership.OwnerAddress != ownerAddr.String() {
			return types.ErrReleaserNotOwner.Wrapf("club %s is owned by %s", msg.ClubName, ownership.OwnerAddress)
		}
		now := BlockTimestamp(ctx)
		if now < ownership.LockingEndsAt() {
			return types.ErrLockingPeriodNotOver.Wrapf("club %s is locked until %d, now %d", msg.ClubName, ownership.LockingEndsAt(), now)
		}

		ownership.Released = true
		if err := k.SetClubOwnership(ctx, ownership); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeReleaseClub,
				sdk.NewAttribute(types.AttributeKeyClubName, msg.ClubName),
				sdk.NewAttribute(types.AttributeKeyOwner, ownership.OwnerAddress),
				sdk.NewAttribute(types.AttributeKeyReleasedAt, strconv.FormatUint(now, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.LogInfo("club released", types.Ownership, "club", msg.ClubName, "owner", msg.Owner)

	return &types.MsgReleaseClubResponse{}, nil
}
