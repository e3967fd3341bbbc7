package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/productscience/clubstaking/x/clubstaking/keeper"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// GenesisTime is the block time every test context starts at.
var GenesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ClubStakingMocks holds all the mock keepers for testing
type ClubStakingMocks struct {
	BankKeeper *MockBookkeepingBankKeeper
}

func ClubStakingKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	ctrl := gomock.NewController(t)
	bankKeeper := NewMockBookkeepingBankKeeper(ctrl)
	k, ctx := ClubStakingKeeperWithMock(t, bankKeeper)

	return k, ctx
}

func ClubStakingKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, ClubStakingMocks) {
	ctrl := gomock.NewController(t)
	bankKeeper := NewMockBookkeepingBankKeeper(ctrl)

	k, ctx := ClubStakingKeeperWithMock(t, bankKeeper)

	mocks := ClubStakingMocks{
		BankKeeper: bankKeeper,
	}

	return k, ctx, mocks
}

func ClubStakingKeeperWithMock(
	t testing.TB,
	bankKeeper types.BookkeepingBankKeeper,
) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		bankKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}
