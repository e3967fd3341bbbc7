package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := k.GetParams(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (k Keeper) ClubOwnership(goCtx context.Context, req *types.QueryClubOwnershipRequest) (*types.QueryClubOwnershipResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ownership, found, err := k.GetClubOwnership(goCtx, req.ClubName)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "no ownership record for club %s", req.ClubName)
	}
	return &types.QueryClubOwnershipResponse{Ownership: ownership}, nil
}

func (k Keeper) ClubPreviousOwner(goCtx context.Context, req *types.QueryClubPreviousOwnerRequest) (*types.QueryClubPreviousOwnerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	previous, found, err := k.GetClubPreviousOwner(goCtx, req.ClubName)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "no previous owner for club %s", req.ClubName)
	}
	return &types.QueryClubPreviousOwnerResponse{PreviousOwner: previous}, nil
}

func (k Keeper) ClubStakes(goCtx context.Context, req *types.QueryClubStakesRequest) (*types.QueryClubStakesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	stakes, found, err := k.GetClubStakes(goCtx, req.ClubName)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "no stakes on club %s", req.ClubName)
	}
	return &types.QueryClubStakesResponse{Stakes: stakes}, nil
}

func (k Keeper) ClubBonds(goCtx context.Context, req *types.QueryClubBondsRequest) (*types.QueryClubBondsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	bonds, found, err := k.GetClubBonds(goCtx, req.ClubName)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "no bonds on club %s", req.ClubName)
	}
	return &types.QueryClubBondsResponse{Bonds: bonds}, nil
}

func (k Keeper) AllStakes(goCtx context.Context, req *types.QueryAllStakesRequest) (*types.QueryAllStakesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	stakes, err := k.GetAllStakes(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryAllStakesResponse{Stakes: stakes}, nil
}

func (k Keeper) AllBonds(goCtx context.Context, req *types.QueryAllBondsRequest) (*types.QueryAllBondsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	bonds, err := k.GetAllBonds(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryAllBondsResponse{Bonds: bonds}, nil
}

func (k Keeper) ClubRanking(goCtx context.Context, req *types.QueryClubRankingRequest) (*types.QueryClubRankingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ranking, err := k.RankClubsByStake(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryClubRankingResponse{Ranking: ranking}, nil
}

func (k Keeper) RewardAmount(goCtx context.Context, req *types.QueryRewardAmountRequest) (*types.QueryRewardAmountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	pool, err := k.GetRewardPool(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryRewardAmountResponse{Amount: pool}, nil
}

func (k Keeper) Escrow(goCtx context.Context, req *types.QueryEscrowRequest) (*types.QueryEscrowResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}
	amount, err := k.GetEscrow(goCtx, addr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryEscrowResponse{Amount: amount}, nil
}

func (k Keeper) LastDistribution(goCtx context.Context, req *types.QueryLastDistributionRequest) (*types.QueryLastDistributionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	record, found, err := k.GetLastDistribution(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Error(codes.NotFound, "no distribution has run yet")
	}
	return &types.QueryLastDistributionResponse{Record: record}, nil
}
