package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer is the server API for the clubstaking Query service.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	ClubOwnership(context.Context, *QueryClubOwnershipRequest) (*QueryClubOwnershipResponse, error)
	ClubPreviousOwner(context.Context, *QueryClubPreviousOwnerRequest) (*QueryClubPreviousOwnerResponse, error)
	ClubStakes(context.Context, *QueryClubStakesRequest) (*QueryClubStakesResponse, error)
	ClubBonds(context.Context, *QueryClubBondsRequest) (*QueryClubBondsResponse, error)
	AllStakes(context.Context, *QueryAllStakesRequest) (*QueryAllStakesResponse, error)
	AllBonds(context.Context, *QueryAllBondsRequest) (*QueryAllBondsResponse, error)
	ClubRanking(context.Context, *QueryClubRankingRequest) (*QueryClubRankingResponse, error)
	RewardAmount(context.Context, *QueryRewardAmountRequest) (*QueryRewardAmountResponse, error)
	Escrow(context.Context, *QueryEscrowRequest) (*QueryEscrowResponse, error)
	LastDistribution(context.Context, *QueryLastDistributionRequest) (*QueryLastDistributionResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryClubOwnershipRequest struct {
	ClubName string `json:"club_name"`
}

type QueryClubOwnershipResponse struct {
	Ownership ClubOwnership `json:"ownership"`
}

type QueryClubPreviousOwnerRequest struct {
	ClubName string `json:"club_name"`
}

type QueryClubPreviousOwnerResponse struct {
	PreviousOwner ClubPreviousOwner `json:"previous_owner"`
}

type QueryClubStakesRequest struct {
	ClubName string `json:"club_name"`
}

type QueryClubStakesResponse struct {
	Stakes []ClubStake `json:"stakes"`
}

type QueryClubBondsRequest struct {
	ClubName string `json:"club_name"`
}

type QueryClubBondsResponse struct {
	Bonds []ClubBond `json:"bonds"`
}

type QueryAllStakesRequest struct{}

type QueryAllStakesResponse struct {
	Stakes []ClubStake `json:"stakes"`
}

type QueryAllBondsRequest struct{}

type QueryAllBondsResponse struct {
	Bonds []ClubBond `json:"bonds"`
}

type QueryClubRankingRequest struct{}

type QueryClubRankingResponse struct {
	Ranking []ClubRanking `json:"ranking"`
}

type QueryRewardAmountRequest struct{}

type QueryRewardAmountResponse struct {
	Amount math.Uint `json:"amount"`
}

type QueryEscrowRequest struct {
	Address string `json:"address"`
}

type QueryEscrowResponse struct {
	Amount math.Uint `json:"amount"`
}

type QueryLastDistributionRequest struct{}

type QueryLastDistributionResponse struct {
	Record DistributionRecord `json:"record"`
}
