package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// ExpectAny lets every settlement call through. Handlers run on a cached
// context, so the context argument is not matched.
func (escrow *MockBookkeepingBankKeeper) ExpectAny() {
	escrow.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	escrow.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	escrow.EXPECT().BurnCoins(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	escrow.ExpectAnyLogs()
}

// ExpectAnyLogs accepts every sub-account log entry.
func (escrow *MockBookkeepingBankKeeper) ExpectAnyLogs() {
	escrow.EXPECT().LogSubAccountTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func coinsOf(amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, math.NewIntFromUint64(amount)))
}

// ExpectCollect expects who to pay amount into the module account.
func (escrow *MockBookkeepingBankKeeper) ExpectCollect(who string, amount uint64) *gomock.Call {
	return escrow.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), mustAddr(who), types.ModuleName, coinsOf(amount), gomock.Any())
}

// ExpectPayout expects the module account to pay amount to who.
func (escrow *MockBookkeepingBankKeeper) ExpectPayout(who string, amount uint64) *gomock.Call {
	return escrow.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, mustAddr(who), coinsOf(amount), gomock.Any())
}

// ExpectBurn expects the module account to burn amount.
func (escrow *MockBookkeepingBankKeeper) ExpectBurn(amount uint64) *gomock.Call {
	return escrow.EXPECT().BurnCoins(gomock.Any(), types.ModuleName, coinsOf(amount), gomock.Any())
}

func mustAddr(who string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(who)
	if err != nil {
		panic(err)
	}
	return addr
}

// ExpectRewardFunding expects who to pay amount into the rewards account.
func (escrow *MockBookkeepingBankKeeper) ExpectRewardFunding(who string, amount uint64) *gomock.Call {
	return escrow.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), mustAddr(who), types.RewardsAccountName, coinsOf(amount), gomock.Any())
}

// ExpectRewardPayout expects the rewards account to pay amount to who.
func (escrow *MockBookkeepingBankKeeper) ExpectRewardPayout(who string, amount uint64) *gomock.Call {
	return escrow.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.RewardsAccountName, mustAddr(who), coinsOf(amount), gomock.Any())
}
