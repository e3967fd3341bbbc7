package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "clubstaking"

	// SubAccountEscrow tracks funds held for club purchases and stakes
	SubAccountEscrow = "club-escrow"

	// SubAccountBonding tracks withdrawn stakes waiting out the bonding period
	SubAccountBonding = "club-bonding"

	// RewardsAccountName is the module account funded by the operator with the
	// reward pool. Every reward claim is paid from it, never from escrow.
	RewardsAccountName = ModuleName + "_rewards"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_clubstaking"
)

var (
	ParamsKey = collections.NewPrefix(0)

	// ClubOwnershipKey is the prefix for ownership records, keyed by club name
	ClubOwnershipKey = collections.NewPrefix(1)

	// ClubPreviousOwnerKey is the prefix for rewards still owed to a seller, keyed by club name
	ClubPreviousOwnerKey = collections.NewPrefix(2)

	// ClubStakesKey is the prefix for the per-club staker list
	ClubStakesKey = collections.NewPrefix(3)

	// ClubBondsKey is the prefix for the per-club list of pending deferred withdrawals
	ClubBondsKey = collections.NewPrefix(4)

	// EscrowKey is the prefix for escrow bookkeeping, keyed by account address
	EscrowKey = collections.NewPrefix(5)

	RewardPoolKey       = collections.NewPrefix(6)
	LastDistributionKey = collections.NewPrefix(7)
)
