package keeper_test

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/clubstaking/testutil/sample"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (s *KeeperTestSuite) TestQueries_NotFound() {
	_, err := s.k.ClubOwnership(s.ctx, &types.QueryClubOwnershipRequest{ClubName: club1})
	s.Require().Equal(codes.NotFound, status.Code(err))

	_, err = s.k.ClubPreviousOwner(s.ctx, &types.QueryClubPreviousOwnerRequest{ClubName: club1})
	s.Require().Equal(codes.NotFound, status.Code(err))

	_, err = s.k.ClubStakes(s.ctx, &types.QueryClubStakesRequest{ClubName: club1})
	s.Require().Equal(codes.NotFound, status.Code(err))

	_, err = s.k.ClubBonds(s.ctx, &types.QueryClubBondsRequest{ClubName: club1})
	s.Require().Equal(codes.NotFound, status.Code(err))

	_, err = s.k.LastDistribution(s.ctx, &types.QueryLastDistributionRequest{})
	s.Require().Equal(codes.NotFound, status.Code(err))
}

func (s *KeeperTestSuite) TestQueries_EmptyCollections() {
	stakes, err := s.k.AllStakes(s.ctx, &types.QueryAllStakesRequest{})
	s.Require().NoError(err)
	s.Require().Empty(stakes.Stakes)

	bonds, err := s.k.AllBonds(s.ctx, &types.QueryAllBondsRequest{})
	s.Require().NoError(err)
	s.Require().Empty(bonds.Bonds)

	ranking, err := s.k.ClubRanking(s.ctx, &types.QueryClubRankingRequest{})
	s.Require().NoError(err)
	s.Require().Empty(ranking.Ranking)

	reward, err := s.k.RewardAmount(s.ctx, &types.QueryRewardAmountRequest{})
	s.Require().NoError(err)
	s.Require().True(reward.Amount.IsZero())
}

func (s *KeeperTestSuite) TestQueries_InvalidRequest() {
	_, err := s.k.ClubOwnership(s.ctx, nil)
	s.Require().Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.k.Escrow(s.ctx, &types.QueryEscrowRequest{Address: "not-an-address"})
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *KeeperTestSuite) TestQueries_AfterActivity() {
	s.bankKeeper.ExpectAny()
	owner := s.ownedClub(club1)
	s.ownedClub(club2)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 40))
	s.Require().NoError(s.stake(sample.AccAddress(), club2, 70))
	s.Require().NoError(s.withdraw(staker, club1, 15, false))

	ownership, err := s.k.ClubOwnership(s.ctx, &types.QueryClubOwnershipRequest{ClubName: club1})
	s.Require().NoError(err)
	s.Require().Equal(owner, ownership.Ownership.OwnerAddress)

	stakes, err := s.k.ClubStakes(s.ctx, &types.QueryClubStakesRequest{ClubName: club1})
	s.Require().NoError(err)
	s.Require().Len(stakes.Stakes, 1)
	s.Require().Equal(uint64(25), stakes.Stakes[0].StakedAmount.Uint64())

	bonds, err := s.k.ClubBonds(s.ctx, &types.QueryClubBondsRequest{ClubName: club1})
	s.Require().NoError(err)
	s.Require().Len(bonds.Bonds, 1)

	ranking, err := s.k.ClubRanking(s.ctx, &types.QueryClubRankingRequest{})
	s.Require().NoError(err)
	s.Require().Len(ranking.Ranking, 2)
	s.Require().Equal(club2, ranking.Ranking[0].ClubName)
	s.Require().Equal(uint64(70), ranking.Ranking[0].TotalStaked.Uint64())
	s.Require().Equal(club1, ranking.Ranking[1].ClubName)
	s.Require().Equal(uint64(25), ranking.Ranking[1].TotalStaked.Uint64())

	escrow, err := s.k.Escrow(s.ctx, &types.QueryEscrowRequest{Address: staker})
	s.Require().NoError(err)
	s.Require().Equal(uint64(25), escrow.Amount.Uint64())

	params, err := s.k.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal(s.operator, params.Params.Operator)
}
