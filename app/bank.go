package app

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const BankStoreKey = "bank"

var (
	BalancesKey    = collections.NewPrefix(0)
	SupplyKey      = collections.NewPrefix(1)
	SubAccountsKey = collections.NewPrefix(2)
)

// supplyAccount is the counter-account for mint and burn entries in the audit log.
const supplyAccount = "supply"

type LogConfig struct {
	DoubleEntry bool   `json:"double_entry" koanf:"double_entry"`
	SimpleEntry bool   `json:"simple_entry" koanf:"simple_entry"`
	LogLevel    string `json:"log_level" koanf:"log_level"`
}

func DefaultLogConfig() LogConfig {
	return LogConfig{SimpleEntry: true, LogLevel: "info"}
}

// Bank is the token ledger the club ledger settles through. Every transfer is
// written to the audit log with its memo.
type Bank struct {
	logger    log.Logger
	logConfig LogConfig

	Schema      collections.Schema
	Balances    collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
	Supply      collections.Map[string, math.Int]
	SubAccounts collections.Map[collections.Triple[string, string, string], math.Int]
}

func NewBank(storeService store.KVStoreService, logger log.Logger, logConfig LogConfig) Bank {
	sb := collections.NewSchemaBuilder(storeService)
	b := Bank{
		logger:    logger,
		logConfig: logConfig,
		Balances: collections.NewMap(sb, BalancesKey, "balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
		Supply: collections.NewMap(sb, SupplyKey, "supply", collections.StringKey, sdk.IntValue),
		SubAccounts: collections.NewMap(sb, SubAccountsKey, "sub_accounts",
			collections.TripleKeyCodec(collections.StringKey, collections.StringKey, collections.StringKey), sdk.IntValue),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	b.Schema = schema
	return b
}

func (b Bank) Logger() log.Logger {
	return b.logger.With("module", "bank")
}

// GetBalance returns the spendable amount of denom held by addr.
func (b Bank) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) (math.Int, error) {
	amount, err := b.Balances.Get(ctx, collections.Join(addr, denom))
	if errorsmod.IsOf(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return amount, err
}

func (b Bank) GetSupply(ctx context.Context, denom string) (math.Int, error) {
	amount, err := b.Supply.Get(ctx, denom)
	if errorsmod.IsOf(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return amount, err
}

// GetSubAccountBalance returns the net amount logged into account under
// subAccount. Holders show up negative, the holding module positive.
func (b Bank) GetSubAccountBalance(ctx context.Context, subAccount string, account string, denom string) (math.Int, error) {
	amount, err := b.SubAccounts.Get(ctx, collections.Join3(subAccount, account, denom))
	if errorsmod.IsOf(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return amount, err
}

// MintCoins creates new coins directly in addr.
func (b Bank) MintCoins(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}
	for _, coin := range amt {
		if err := b.addCoin(ctx, addr, coin); err != nil {
			return err
		}
		supply, err := b.GetSupply(ctx, coin.Denom)
		if err != nil {
			return err
		}
		if err := b.Supply.Set(ctx, coin.Denom, supply.Add(coin.Amount)); err != nil {
			return err
		}
		b.logTransaction(ctx, addr.String(), supplyAccount, coin, memo, "")
	}
	return nil
}

func (b Bank) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error {
	if err := b.send(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt); err != nil {
		return err
	}
	for _, coin := range amt {
		b.logTransaction(ctx, recipientModule, senderAddr.String(), coin, memo, "")
	}
	return nil
}

func (b Bank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if err := b.send(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		b.logTransaction(ctx, recipientAddr.String(), senderModule, coin, memo, "")
	}
	return nil
}

func (b Bank) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		b.Logger().Info("No coins to burn")
		return nil
	}
	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}
	moduleAddr := authtypes.NewModuleAddress(moduleName)
	for _, coin := range amt {
		if err := b.subCoin(ctx, moduleAddr, coin); err != nil {
			return err
		}
		supply, err := b.GetSupply(ctx, coin.Denom)
		if err != nil {
			return err
		}
		if err := b.Supply.Set(ctx, coin.Denom, supply.Sub(coin.Amount)); err != nil {
			return err
		}
		b.logTransaction(ctx, supplyAccount, moduleName, coin, memo, "")
	}
	return nil
}

// LogSubAccountTransaction moves amt from sender to recipient inside the
// tracking account subAccount. No spendable balance changes.
func (b Bank) LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string) {
	if amt.Amount.IsZero() {
		return
	}
	if err := b.adjustSubAccount(ctx, subAccount, recipient, amt.Denom, amt.Amount); err != nil {
		b.Logger().Error("failed to track sub-account entry", "subaccount", subAccount, "account", recipient, "error", err)
	}
	if err := b.adjustSubAccount(ctx, subAccount, sender, amt.Denom, amt.Amount.Neg()); err != nil {
		b.Logger().Error("failed to track sub-account entry", "subaccount", subAccount, "account", sender, "error", err)
	}
	b.logTransaction(ctx, recipient+"_"+subAccount, sender+"_"+subAccount, amt, memo, subAccount)
}

func (b Bank) send(ctx context.Context, from sdk.AccAddress, to sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}
	for _, coin := range amt {
		if err := b.subCoin(ctx, from, coin); err != nil {
			return err
		}
		if err := b.addCoin(ctx, to, coin); err != nil {
			return err
		}
	}
	return nil
}

func (b Bank) addCoin(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	balance, err := b.GetBalance(ctx, addr, coin.Denom)
	if err != nil {
		return err
	}
	return b.Balances.Set(ctx, collections.Join(addr, coin.Denom), balance.Add(coin.Amount))
}

func (b Bank) subCoin(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	balance, err := b.GetBalance(ctx, addr, coin.Denom)
	if err != nil {
		return err
	}
	if balance.LT(coin.Amount) {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s%s is smaller than %s", balance, coin.Denom, coin)
	}
	return b.Balances.Set(ctx, collections.Join(addr, coin.Denom), balance.Sub(coin.Amount))
}

func (b Bank) adjustSubAccount(ctx context.Context, subAccount string, account string, denom string, delta math.Int) error {
	current, err := b.GetSubAccountBalance(ctx, subAccount, account, denom)
	if err != nil {
		return err
	}
	return b.SubAccounts.Set(ctx, collections.Join3(subAccount, account, denom), current.Add(delta))
}

func (b Bank) logTransaction(ctx context.Context, to string, from string, coin sdk.Coin, memo string, subAccount string) {
	if coin.Amount.IsZero() {
		return
	}
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	logFunc := b.getLogFunction(b.logConfig.LogLevel)
	amount := coin.Amount.String()
	if b.logConfig.DoubleEntry {
		logFunc("TransactionAudit", "type", "debit", "account", to, "counteraccount", from, "amount", amount, "denom", coin.Denom, "memo", memo, "height", height)
		logFunc("TransactionAudit", "type", "credit", "account", from, "counteraccount", to, "amount", amount, "denom", coin.Denom, "memo", memo, "height", height)
	}
	if b.logConfig.SimpleEntry {
		heightString := fmt.Sprintf("%d", height)
		if subAccount != "" {
			logFunc(fmt.Sprintf("SubAccountEntry  to=%s from=%s amount=%20s %-10s height=%8s memo=%s subaccount=%s", fixedSize(to, 64), fixedSize(from, 64), amount, coin.Denom, heightString, memo, subAccount))
		} else {
			logFunc(fmt.Sprintf("TransactionEntry to=%s from=%s amount=%20s %-10s height=%8s memo=%s", fixedSize(to, 64), fixedSize(from, 64), amount, coin.Denom, heightString, memo))
		}
	}
}

func (b Bank) getLogFunction(level string) func(msg string, keyvals ...interface{}) {
	switch strings.ToLower(level) {
	case "debug":
		return b.Logger().Debug
	case "error":
		return b.Logger().Error
	case "warn":
		return b.Logger().Warn
	default:
		return b.Logger().Info
	}
}

func fixedSize(s string, size int) string {
	if len(s) > size {
		return s[:size]
	}
	return s + strings.Repeat(" ", size-len(s))
}
