package types

import (
	"context"
)

// MsgServer is the server API for the clubstaking Msg service.
type MsgServer interface {
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	BuyClub(context.Context, *MsgBuyClub) (*MsgBuyClubResponse, error)
	ReleaseClub(context.Context, *MsgReleaseClub) (*MsgReleaseClubResponse, error)
	ClaimOwnerRewards(context.Context, *MsgClaimOwnerRewards) (*MsgClaimOwnerRewardsResponse, error)
	ClaimPreviousOwnerRewards(context.Context, *MsgClaimPreviousOwnerRewards) (*MsgClaimPreviousOwnerRewardsResponse, error)
	StakeOnClub(context.Context, *MsgStakeOnClub) (*MsgStakeOnClubResponse, error)
	WithdrawStake(context.Context, *MsgWithdrawStake) (*MsgWithdrawStakeResponse, error)
	ClaimRewards(context.Context, *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
	PeriodicRefundStakeouts(context.Context, *MsgPeriodicRefundStakeouts) (*MsgPeriodicRefundStakeoutsResponse, error)
	SetRewardAmount(context.Context, *MsgSetRewardAmount) (*MsgSetRewardAmountResponse, error)
	CalculateAndDistributeRewards(context.Context, *MsgCalculateAndDistributeRewards) (*MsgCalculateAndDistributeRewardsResponse, error)
}

type MsgUpdateParamsResponse struct{}

type MsgBuyClubResponse struct{}

type MsgReleaseClubResponse struct{}

type MsgClaimOwnerRewardsResponse struct{}

type MsgClaimPreviousOwnerRewardsResponse struct{}

type MsgStakeOnClubResponse struct{}

type MsgWithdrawStakeResponse struct{}

type MsgClaimRewardsResponse struct{}

type MsgPeriodicRefundStakeoutsResponse struct{}

type MsgSetRewardAmountResponse struct{}

type MsgCalculateAndDistributeRewardsResponse struct{}
