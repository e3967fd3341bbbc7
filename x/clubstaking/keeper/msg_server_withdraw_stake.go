package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (k msgServer) WithdrawStake(goCtx context.Context, msg *types.MsgWithdrawStake) (*types.MsgWithdrawStakeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrapf(err, "invalid message")
	}
	stakerAddr, err := actingAs(msg.Creator, msg.Staker, "staker")
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	err = k.inCacheContext(ctx, func(ctx sdk.Context) error {
		_, owned, err := k.GetClubOwnership(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		if !owned {
			return types.ErrClubNotAvailableForStaking.Wrapf("club %s has no owner", msg.ClubName)
		}

		stakes, _, err := k.GetClubStakes(ctx, msg.ClubName)
		if err != nil {
			return err
		}
		stakes, err = removeStake(stakes, stakerAddr.String(), msg.Amount)
		if err != nil {
			return errorsmod.Wrapf(err, "club %s", msg.ClubName)
		}
		if err := k.SetClubStakes(ctx, msg.ClubName, stakes); err != nil {
			return err
		}
		if err := k.debitEscrow(ctx, stakerAddr, msg.Amount); err != nil {
			return err
		}

		event := sdk.NewEvent(
			types.EventTypeWithdrawStake,
			sdk.NewAttribute(types.AttributeKeyClubName, msg.ClubName),
			sdk.NewAttribute(types.AttributeKeyStaker, stakerAddr.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyImmediate, strconv.FormatBool(msg.ImmediateWithdrawal)),
		)

		if msg.ImmediateWithdrawal {
			refund := params.RefundAmount(msg.Amount)
			burned := msg.Amount.Sub(refund)
			k.logRelease(ctx, params, stakerAddr.String(), types.SubAccountEscrow, msg.Amount, "immediate withdrawal")
			if err := k.pay(ctx, params, stakerAddr, refund, "immediate withdrawal"); err != nil {
				return err
			}
			if err := k.burn(ctx, params, burned, "immediate withdrawal fee"); err != nil {
				return err
			}
			event = event.AppendAttributes(
				sdk.NewAttribute(types.AttributeKeyRefundAmount, refund.String()),
				sdk.NewAttribute(types.AttributeKeyBurnAmount, burned.String()),
			)
		} else {
			bond := types.ClubBond{
				ClubName:              msg.ClubName,
				BonderAddress:         stakerAddr.String(),
				BondingStartTimestamp: BlockTimestamp(ctx),
				BondedAmount:          msg.Amount,
				BondingDuration:       params.BondingPeriod,
			}
			if err := k.AppendClubBond(ctx, bond); err != nil {
				return err
			}
			k.logRelease(ctx, params, stakerAddr.String(), types.SubAccountEscrow, msg.Amount, "stake to bonding")
			k.logHold(ctx, params, stakerAddr.String(), types.SubAccountBonding, msg.Amount, "stake to bonding")
		}

		ctx.EventManager().EmitEvent(event)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.LogInfo("stake withdrawn", types.Staking,
		"club", msg.ClubName,
		"staker", msg.Staker,
		"amount", msg.Amount.String(),
		"immediate", msg.ImmediateWithdrawal,
	)

	return &types.MsgWithdrawStakeResponse{}, nil
}
