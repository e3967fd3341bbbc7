package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/productscience/clubstaking/x/clubstaking/keeper"
	clubstakingmodule "github.com/productscience/clubstaking/x/clubstaking/module"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

const (
	Name = "clubstaking"

	dataDir = "data"
)

// DefaultNodeHome is where the ledger keeps its config and database.
var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name)
}

// App hosts the club ledger and its bank on one committed multistore.
// Each Deliver runs at a new height.
type App struct {
	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	keys   map[string]*storetypes.KVStoreKey

	Bank              Bank
	ClubStakingKeeper keeper.Keeper
}

// Open loads the ledger database under home, creating it if needed.
func Open(home string, logger log.Logger, logConfig LogConfig) (*App, error) {
	db, err := dbm.NewDB(Name, dbm.GoLevelDBBackend, filepath.Join(home, dataDir))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return New(db, logger, logConfig)
}

func New(db dbm.DB, logger log.Logger, logConfig LogConfig) (*App, error) {
	keys := storetypes.NewKVStoreKeys(types.StoreKey, BankStoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load multistore: %w", err)
	}

	bank := NewBank(runtime.NewKVStoreService(keys[BankStoreKey]), logger, logConfig)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	return &App{
		logger: logger,
		db:     db,
		cms:    cms,
		keys:   keys,
		Bank:   bank,
		ClubStakingKeeper: keeper.NewKeeper(
			runtime.NewKVStoreService(keys[types.StoreKey]),
			logger,
			authority.String(),
			bank,
		),
	}, nil
}

// LastHeight is the height of the last committed state, zero before genesis.
func (app *App) LastHeight() int64 {
	return app.cms.LastCommitID().Version
}

func (app *App) Initialized() bool {
	return app.LastHeight() > 0
}

// InitChain writes genesis and commits it as height 1.
func (app *App) InitChain(genesis Genesis) error {
	if app.Initialized() {
		return fmt.Errorf("ledger already initialized at height %d", app.LastHeight())
	}
	if err := genesis.Validate(); err != nil {
		return err
	}
	return app.Deliver(genesis.GenesisTime, func(ctx sdk.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("genesis failed: %v", r)
			}
		}()
		for _, balance := range genesis.Balances {
			addr, err := sdk.AccAddressFromBech32(balance.Address)
			if err != nil {
				return err
			}
			if err := app.Bank.MintCoins(ctx, addr, balance.Coins, "genesis"); err != nil {
				return err
			}
		}
		clubstakingmodule.InitGenesis(ctx, app.ClubStakingKeeper, genesis.ClubStaking)
		return nil
	})
}

// Deliver runs fn on a new block at blockTime. State is committed only if
// fn succeeds.
func (app *App) Deliver(blockTime time.Time, fn func(ctx sdk.Context) error) error {
	cache := app.cms.CacheMultiStore()
	ctx := app.newContext(cache, app.LastHeight()+1, blockTime)
	if err := fn(ctx); err != nil {
		return err
	}
	cache.Write()
	commitID := app.cms.Commit()
	app.logger.Debug("committed", "height", commitID.Version, "time", blockTime.UTC())
	return nil
}

// QueryContext reads the last committed state. Writes made through it are
// discarded.
func (app *App) QueryContext(blockTime time.Time) sdk.Context {
	return app.newContext(app.cms.CacheMultiStore(), app.LastHeight(), blockTime)
}

func (app *App) MsgServer() types.MsgServer {
	return keeper.NewMsgServerImpl(app.ClubStakingKeeper)
}

func (app *App) QueryServer() types.QueryServer {
	return app.ClubStakingKeeper
}

// ExportGenesis snapshots the ledger and every nonzero bank balance.
func (app *App) ExportGenesis(blockTime time.Time) (Genesis, error) {
	ctx := app.QueryContext(blockTime)
	genesis := Genesis{
		GenesisTime: blockTime.UTC(),
		ClubStaking: *clubstakingmodule.ExportGenesis(ctx, app.ClubStakingKeeper),
	}

	balances := make(map[string]sdk.Coins)
	var order []string
	err := app.Bank.Balances.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, string], amount math.Int) (bool, error) {
		if amount.IsZero() {
			return false, nil
		}
		addr := key.K1().String()
		if _, ok := balances[addr]; !ok {
			order = append(order, addr)
		}
		balances[addr] = balances[addr].Add(sdk.NewCoin(key.K2(), amount))
		return false, nil
	})
	if err != nil {
		return Genesis{}, err
	}
	for _, addr := range order {
		genesis.Balances = append(genesis.Balances, Balance{Address: addr, Coins: balances[addr]})
	}
	return genesis, nil
}

func (app *App) Close() error {
	return app.db.Close()
}

func (app *App) newContext(ms storetypes.MultiStore, height int64, blockTime time.Time) sdk.Context {
	header := cmtproto.Header{ChainID: Name, Height: height, Time: blockTime}
	return sdk.NewContext(ms, header, false, app.logger)
}
