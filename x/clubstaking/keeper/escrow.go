package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// GetEscrow returns the amount the module holds for address. Unknown
// addresses hold zero.
func (k Keeper) GetEscrow(ctx context.Context, address sdk.AccAddress) (math.Uint, error) {
	amount, err := k.EscrowMap.Get(ctx, address)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroUint(), nil
	}
	if err != nil {
		return math.ZeroUint(), storageErr(err, "read escrow")
	}
	return amount, nil
}

func (k Keeper) SetEscrow(ctx context.Context, address sdk.AccAddress, amount math.Uint) error {
	if err := k.EscrowMap.Set(ctx, address, amount); err != nil {
		return storageErr(err, "write escrow")
	}
	return nil
}

func (k Keeper) creditEscrow(ctx context.Context, address sdk.AccAddress, amount math.Uint) error {
	current, err := k.GetEscrow(ctx, address)
	if err != nil {
		return err
	}
	return k.SetEscrow(ctx, address, current.Add(amount))
}

// debitEscrow saturates at zero. Escrow is bookkeeping only, the module
// account is what settles.
func (k Keeper) debitEscrow(ctx context.Context, address sdk.AccAddress, amount math.Uint) error {
	current, err := k.GetEscrow(ctx, address)
	if err != nil {
		return err
	}
	if amount.GT(current) {
		k.LogWarn("escrow debit exceeds balance, clamping to zero", types.Settlement,
			"address", address.String(), "balance", current.String(), "debit", amount.String())
		return k.SetEscrow(ctx, address, math.ZeroUint())
	}
	return k.SetEscrow(ctx, address, current.Sub(amount))
}

// releasePurchaseEscrow takes the price paid for a sold club out of the
// seller's escrow and returns what can be refunded. Escrow also carries the
// seller's stakes, which stay put until withdrawn.
func (k Keeper) releasePurchaseEscrow(ctx context.Context, seller sdk.AccAddress, pricePaid math.Uint) (math.Uint, error) {
	current, err := k.GetEscrow(ctx, seller)
	if err != nil {
		return math.ZeroUint(), err
	}
	refund := pricePaid
	if refund.GT(current) {
		k.LogWarn("seller escrow below purchase price, refunding what is held", types.Settlement,
			"address", seller.String(), "balance", current.String(), "price", pricePaid.String())
		refund = current
	}
	return refund, k.SetEscrow(ctx, seller, current.Sub(refund))
}

func (k Keeper) GetAllEscrow(ctx context.Context) ([]types.EscrowBalance, error) {
	balances := make([]types.EscrowBalance, 0)
	err := k.EscrowMap.Walk(ctx, nil, func(address sdk.AccAddress, amount math.Uint) (bool, error) {
		balances = append(balances, types.EscrowBalance{Address: address.String(), Amount: amount})
		return false, nil
	})
	if err != nil {
		return nil, storageErr(err, "iterate escrow")
	}
	return balances, nil
}
