package types

import (
	"cosmossdk.io/math"
)

const MaxClubNameLength = 128

// ClubOwnership is the ownership record of a club. A club keeps exactly one
// record once it has been bought; resale overwrites it.
type ClubOwnership struct {
	ClubName string `json:"club_name"`
	// StartTimestamp is when ownership was taken; the locking period counts from here
	StartTimestamp uint64 `json:"start_timestamp"`
	// LockingPeriod in seconds
	LockingPeriod uint64    `json:"locking_period"`
	OwnerAddress  string    `json:"owner_address"`
	PricePaid     math.Uint `json:"price_paid"`
	RewardAmount  math.Uint `json:"reward_amount"`
	// Released is set once the owner lets another buyer purchase the club
	Released bool `json:"released"`
}

// LockingEndsAt returns the first timestamp at which the owner may release the club.
func (o ClubOwnership) LockingEndsAt() uint64 {
	return o.StartTimestamp + o.LockingPeriod
}

// ClubPreviousOwner holds the reward still owed to the seller of a club.
type ClubPreviousOwner struct {
	ClubName             string    `json:"club_name"`
	PreviousOwnerAddress string    `json:"previous_owner_address"`
	RewardAmount         math.Uint `json:"reward_amount"`
}

// ClubStake is one staker's accumulated stake on a club.
type ClubStake struct {
	ClubName              string    `json:"club_name"`
	StakerAddress         string    `json:"staker_address"`
	StakingStartTimestamp uint64    `json:"staking_start_timestamp"`
	StakedAmount          math.Uint `json:"staked_amount"`
	StakingDuration       uint64    `json:"staking_duration"`
	RewardAmount          math.Uint `json:"reward_amount"`
}

// ClubBond is a deferred withdrawal waiting out the bonding period.
type ClubBond struct {
	ClubName              string    `json:"club_name"`
	BonderAddress         string    `json:"bonder_address"`
	BondingStartTimestamp uint64    `json:"bonding_start_timestamp"`
	BondedAmount          math.Uint `json:"bonded_amount"`
	BondingDuration       uint64    `json:"bonding_duration"`
}

// MaturesAt returns the first timestamp at which the bond can be refunded.
func (b ClubBond) MaturesAt() uint64 {
	return b.BondingStartTimestamp + b.BondingDuration
}

// IsMatured reports whether the bonding period has elapsed at now.
func (b ClubBond) IsMatured(now uint64) bool {
	return now >= b.MaturesAt()
}

// ClubRanking is a club with the sum of all stakes placed on it.
type ClubRanking struct {
	ClubName    string    `json:"club_name"`
	TotalStaked math.Uint `json:"total_staked"`
}

// EscrowBalance is the bookkeeping amount held by the module for an address.
type EscrowBalance struct {
	Address string    `json:"address"`
	Amount  math.Uint `json:"amount"`
}

// DistributionRecord describes the last reward distribution round.
type DistributionRecord struct {
	WinnerClub          string    `json:"winner_club"`
	Pool                math.Uint `json:"pool"`
	OwnerReward         math.Uint `json:"owner_reward"`
	WinnerStakersReward math.Uint `json:"winner_stakers_reward"`
	AllStakersReward    math.Uint `json:"all_stakers_reward"`
	Distributed         math.Uint `json:"distributed"`
	Timestamp           uint64    `json:"timestamp"`
}

// Undistributed is the floor-rounding remainder left over from the pool.
func (r DistributionRecord) Undistributed() math.Uint {
	if r.Distributed.GT(r.Pool) {
		return math.ZeroUint()
	}
	return r.Pool.Sub(r.Distributed)
}

// ValidateClubName checks that a club name is usable as a store key.
func ValidateClubName(name string) error {
	if name == "" {
		return ErrInvalidClubName.Wrap("club name cannot be empty")
	}
	if len(name) > MaxClubNameLength {
		return ErrInvalidClubName.Wrapf("club name longer than %d bytes", MaxClubNameLength)
	}
	return nil
}
