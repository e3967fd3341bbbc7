package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// Settlement moves real tokens through the bank keeper. Purchase and stake
// principal sit in the module account, the funded reward pool in the rewards
// account. Ledger state is written before settling, and every handler runs on
// a cache branch, so a failed transfer discards the ledger change along with
// it. Zero amounts are never sent.

func coinOf(params types.Params, amount math.Uint) sdk.Coin {
	return sdk.NewCoin(params.Denom, math.NewIntFromBigInt(amount.BigInt()))
}

// collect debits from the account into the module account.
func (k Keeper) collect(ctx context.Context, params types.Params, from sdk.AccAddress, amount math.Uint, memo string) error {
	return k.sendToModule(ctx, params, from, types.ModuleName, amount, memo)
}

// pay sends from the module account to the account.
func (k Keeper) pay(ctx context.Context, params types.Params, to sdk.AccAddress, amount math.Uint, memo string) error {
	return k.sendFromModule(ctx, params, types.ModuleName, to, amount, memo)
}

// fundRewards moves amount from the account into the rewards account.
func (k Keeper) fundRewards(ctx context.Context, params types.Params, from sdk.AccAddress, amount math.Uint, memo string) error {
	return k.sendToModule(ctx, params, from, types.RewardsAccountName, amount, memo)
}

// payReward sends a claimed reward from the rewards account. Escrowed
// purchase and stake funds are never touched by a claim.
func (k Keeper) payReward(ctx context.Context, params types.Params, to sdk.AccAddress, amount math.Uint, memo string) error {
	return k.sendFromModule(ctx, params, types.RewardsAccountName, to, amount, memo)
}

func (k Keeper) sendToModule(ctx context.Context, params types.Params, from sdk.AccAddress, module string, amount math.Uint, memo string) error {
	if amount.IsZero() {
		return nil
	}
	coin := coinOf(params, amount)
	if err := k.bookkeepingBankKeeper.SendCoinsFromAccountToModule(ctx, from, module, sdk.NewCoins(coin), memo); err != nil {
		k.LogError("failed to collect funds", types.Settlement, "from", from.String(), "module", module, "amount", coin.String(), "error", err)
		return types.ErrSettlement.Wrapf("%s: %s", memo, err)
	}
	return nil
}

func (k Keeper) sendFromModule(ctx context.Context, params types.Params, module string, to sdk.AccAddress, amount math.Uint, memo string) error {
	if amount.IsZero() {
		return nil
	}
	coin := coinOf(params, amount)
	if err := k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, module, to, sdk.NewCoins(coin), memo); err != nil {
		k.LogError("failed to pay out funds", types.Settlement, "to", to.String(), "module", module, "amount", coin.String(), "error", err)
		return types.ErrSettlement.Wrapf("%s: %s", memo, err)
	}
	return nil
}

func (k Keeper) burn(ctx context.Context, params types.Params, amount math.Uint, memo string) error {
	if amount.IsZero() {
		return nil
	}
	coin := coinOf(params, amount)
	if err := k.bookkeepingBankKeeper.BurnCoins(ctx, types.ModuleName, sdk.NewCoins(coin), memo); err != nil {
		k.LogError("failed to burn funds", types.Settlement, "amount", coin.String(), "error", err)
		return types.ErrSettlement.Wrapf("%s: %s", memo, err)
	}
	return nil
}

// logHold records that the module now holds amount for holder in subAccount.
func (k Keeper) logHold(ctx context.Context, params types.Params, holder string, subAccount string, amount math.Uint, memo string) {
	if amount.IsZero() {
		return
	}
	k.bookkeepingBankKeeper.LogSubAccountTransaction(ctx, types.ModuleName, holder, subAccount, coinOf(params, amount), memo)
}

// logRelease records that the module no longer holds amount for holder in subAccount.
func (k Keeper) logRelease(ctx context.Context, params types.Params, holder string, subAccount string, amount math.Uint, memo string) {
	if amount.IsZero() {
		return
	}
	k.bookkeepingBankKeeper.LogSubAccountTransaction(ctx, holder, types.ModuleName, subAccount, coinOf(params, amount), memo)
}
