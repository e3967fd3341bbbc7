package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

type Keeper struct {
	storeService store.KVStoreService
	logger       log.Logger

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string

	bookkeepingBankKeeper types.BookkeepingBankKeeper

	Schema               collections.Schema
	params               collections.Item[types.Params]
	Ownerships           collections.Map[string, types.ClubOwnership]
	PreviousOwners       collections.Map[string, types.ClubPreviousOwner]
	Stakes               collections.Map[string, []types.ClubStake]
	Bonds                collections.Map[string, []types.ClubBond]
	EscrowMap            collections.Map[sdk.AccAddress, math.Uint]
	RewardPoolItem       collections.Item[math.Uint]
	LastDistributionItem collections.Item[types.DistributionRecord]
}

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		bookkeepingBankKeeper: bookkeepingBankKeeper,
		params:                collections.NewItem(sb, types.ParamsKey, "params", types.JSONValue[types.Params]()),
		Ownerships:            collections.NewMap(sb, types.ClubOwnershipKey, "club_ownership", collections.StringKey, types.JSONValue[types.ClubOwnership]()),
		PreviousOwners:        collections.NewMap(sb, types.ClubPreviousOwnerKey, "club_previous_owner", collections.StringKey, types.JSONValue[types.ClubPreviousOwner]()),
		Stakes:                collections.NewMap(sb, types.ClubStakesKey, "club_stakes", collections.StringKey, types.JSONValue[[]types.ClubStake]()),
		Bonds:                 collections.NewMap(sb, types.ClubBondsKey, "club_bonds", collections.StringKey, types.JSONValue[[]types.ClubBond]()),
		EscrowMap:             collections.NewMap(sb, types.EscrowKey, "escrow", sdk.AccAddressKey, types.JSONValue[math.Uint]()),
		RewardPoolItem:        collections.NewItem(sb, types.RewardPoolKey, "reward_pool", types.JSONValue[math.Uint]()),
		LastDistributionItem:  collections.NewItem(sb, types.LastDistributionKey, "last_distribution", types.JSONValue[types.DistributionRecord]()),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) LogInfo(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Info(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogError(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Error(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogWarn(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Warn(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogDebug(msg string, subSystem types.SubSystem, keyVals ...interface{}) {
	k.Logger().Debug(msg, append(keyVals, "subsystem", subSystem.String())...)
}

// BlockTimestamp is the ledger clock: block time in whole seconds.
func BlockTimestamp(ctx context.Context) uint64 {
	unix := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if unix < 0 {
		return 0
	}
	return uint64(unix)
}

// inCacheContext runs fn on a branch of ctx. State written by fn, and the
// events it emits, reach ctx only if fn returns nil.
func (k Keeper) inCacheContext(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func storageErr(err error, what string) error {
	return types.WrapStorage(err, what)
}
