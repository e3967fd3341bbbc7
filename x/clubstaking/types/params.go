package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

// Default parameter values
var (
	DefaultDenom                         = "uclub"
	DefaultClubPrice                     = math.NewUint(1_000_000_000)
	DefaultBuyingReward                  = math.NewUint(100)
	DefaultStakingReward                 = math.ZeroUint()
	DefaultLockingPeriod                 = uint64(21 * 24 * 60 * 60) // 21 days
	DefaultBondingPeriod                 = uint64(7 * 24 * 60 * 60)  // 7 days
	DefaultStakingDuration               = uint64(0)
	DefaultImmediateWithdrawalFeePercent = uint64(10)
	DefaultOwnerBonusPercent             = uint64(1)
	DefaultWinnerStakersPercent          = uint64(19)
	DefaultAllStakersPercent             = uint64(80)
)

// Params are the economic constants of the club ledger.
type Params struct {
	// Operator may set the reward pool, distribute it and sweep matured bonds
	Operator string `json:"operator"`
	Denom    string `json:"denom"`

	ClubPrice     math.Uint `json:"club_price"`
	BuyingReward  math.Uint `json:"buying_reward"`
	StakingReward math.Uint `json:"staking_reward"`

	LockingPeriod   uint64 `json:"locking_period"`
	BondingPeriod   uint64 `json:"bonding_period"`
	StakingDuration uint64 `json:"staking_duration"`

	ImmediateWithdrawalFeePercent uint64 `json:"immediate_withdrawal_fee_percent"`
	OwnerBonusPercent             uint64 `json:"owner_bonus_percent"`
	WinnerStakersPercent          uint64 `json:"winner_stakers_percent"`
	AllStakersPercent             uint64 `json:"all_stakers_percent"`
}

// DefaultOperator is the gov module account, so operator messages can go
// through governance until a dedicated operator is configured.
func DefaultOperator() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// NewParams creates a new Params instance
func NewParams(
	operator string,
	denom string,
	clubPrice math.Uint,
	buyingReward math.Uint,
	stakingReward math.Uint,
	lockingPeriod uint64,
	bondingPeriod uint64,
	stakingDuration uint64,
	immediateWithdrawalFeePercent uint64,
	ownerBonusPercent uint64,
	winnerStakersPercent uint64,
	allStakersPercent uint64,
) Params {
	return Params{
		Operator:                      operator,
		Denom:                         denom,
		ClubPrice:                     clubPrice,
		BuyingReward:                  buyingReward,
		StakingReward:                 stakingReward,
		LockingPeriod:                 lockingPeriod,
		BondingPeriod:                 bondingPeriod,
		StakingDuration:               stakingDuration,
		ImmediateWithdrawalFeePercent: immediateWithdrawalFeePercent,
		OwnerBonusPercent:             ownerBonusPercent,
		WinnerStakersPercent:          winnerStakersPercent,
		AllStakersPercent:             allStakersPercent,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(
		DefaultOperator(),
		DefaultDenom,
		DefaultClubPrice,
		DefaultBuyingReward,
		DefaultStakingReward,
		DefaultLockingPeriod,
		DefaultBondingPeriod,
		DefaultStakingDuration,
		DefaultImmediateWithdrawalFeePercent,
		DefaultOwnerBonusPercent,
		DefaultWinnerStakersPercent,
		DefaultAllStakersPercent,
	)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.Operator); err != nil {
		return fmt.Errorf("invalid operator address: %w", err)
	}
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	if err := validateAmount("club price", p.ClubPrice); err != nil {
		return err
	}
	if err := validateAmount("buying reward", p.BuyingReward); err != nil {
		return err
	}
	if err := validateAmount("staking reward", p.StakingReward); err != nil {
		return err
	}
	if p.ImmediateWithdrawalFeePercent > 100 {
		return fmt.Errorf("immediate withdrawal fee cannot exceed 100%%, got %d", p.ImmediateWithdrawalFeePercent)
	}
	total := p.OwnerBonusPercent + p.WinnerStakersPercent + p.AllStakersPercent
	if total > 100 {
		return fmt.Errorf("reward split cannot exceed 100%%, got %d", total)
	}
	return nil
}

// RefundAmount returns the part of an immediate withdrawal paid back to the staker.
func (p Params) RefundAmount(amount math.Uint) math.Uint {
	return amount.MulUint64(100 - p.ImmediateWithdrawalFeePercent).QuoUint64(100)
}

func validateAmount(name string, v math.Uint) error {
	if v.IsNil() {
		return fmt.Errorf("%s must be set", name)
	}
	return nil
}
