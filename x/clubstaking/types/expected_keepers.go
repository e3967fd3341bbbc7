package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BookkeepingBankKeeper is the token module the ledger settles through.
// Every call carries a memo that ends up in the transaction audit log.
type BookkeepingBankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
	// For logging transactions to tracking accounts, like escrow and bonding holds
	LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string)
}
