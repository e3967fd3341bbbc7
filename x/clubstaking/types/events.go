package types

// Event types
const (
	EventTypeBuyClub                   = "buy_club"
	EventTypeReleaseClub               = "release_club"
	EventTypeClaimOwnerRewards         = "claim_owner_rewards"
	EventTypeClaimPreviousOwnerRewards = "claim_previous_owner_rewards"
	EventTypeStakeOnClub               = "stake_on_club"
	EventTypeWithdrawStake             = "withdraw_stake"
	EventTypeClaimRewards              = "claim_rewards"
	EventTypeRefundStakeout            = "refund_stakeout"
	EventTypeRefundStakeouts           = "refund_stakeouts"
	EventTypeSetRewardAmount           = "set_reward_amount"
	EventTypeDistributeRewards         = "distribute_rewards"
)

// Event attribute keys
const (
	AttributeKeyClubName      = "club_name"
	AttributeKeyOwner         = "owner"
	AttributeKeyBuyer         = "buyer"
	AttributeKeySeller        = "seller"
	AttributeKeyStaker        = "staker"
	AttributeKeyAmount        = "amount"
	AttributeKeyRefundAmount  = "refund_amount"
	AttributeKeyBurnAmount    = "burn_amount"
	AttributeKeyImmediate     = "immediate"
	AttributeKeyWinnerClub    = "winner_club"
	AttributeKeyDistributed   = "distributed"
	AttributeKeyMaturedBonds  = "matured_bonds"
	AttributeKeyRemainingBond = "remaining_bonds"
	AttributeKeyReleasedAt    = "released_at"
)
