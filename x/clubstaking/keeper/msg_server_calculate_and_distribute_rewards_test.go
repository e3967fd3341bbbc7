package keeper_test

import (
	"errors"

	"cosmossdk.io/math"
	"go.uber.org/mock/gomock"

	"github.com/productscience/clubstaking/testutil/sample"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (s *KeeperTestSuite) setRewardAmount(amount uint64) {
	_, err := s.msgServer.SetRewardAmount(s.ctx, types.NewMsgSetRewardAmount(s.operator, math.NewUint(amount)))
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) distribute() error {
	_, err := s.msgServer.CalculateAndDistributeRewards(s.ctx, types.NewMsgCalculateAndDistributeRewards(s.operator))
	return err
}

func (s *KeeperTestSuite) rewardPool() uint64 {
	pool, err := s.k.GetRewardPool(s.ctx)
	s.Require().NoError(err)
	return pool.Uint64()
}

func (s *KeeperTestSuite) TestCalculateAndDistributeRewards() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	s.ownedClub(club2)
	owner3 := s.ownedClub(club3)

	stakers := sample.AccAddresses(6)
	placed := []struct {
		club   string
		amount uint64
		reward uint64
	}{
		{club1, 330000, 144262},
		{club1, 110000, 48087},
		{club2, 420000, 183606},
		{club2, 100000, 43715},
		{club3, 820000, 537549},
		{club3, 50000, 32776},
	}
	for i, p := range placed {
		s.Require().NoError(s.stake(stakers[i], p.club, p.amount))
	}

	s.setRewardAmount(1000000)
	s.Require().NoError(s.distribute())

	all, err := s.k.GetAllStakes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, len(placed))
	rewards := make(map[string]uint64, len(all))
	for _, stake := range all {
		rewards[stake.StakerAddress] = stake.RewardAmount.Uint64()
	}
	for i, p := range placed {
		s.Require().Equal(p.reward, rewards[stakers[i]], "staker %d on %s", i, p.club)
	}

	winner := s.ownership(club3)
	s.Require().Equal(owner3, winner.OwnerAddress)
	s.Require().Equal(uint64(100+10000), winner.RewardAmount.Uint64())
	s.Require().Equal(uint64(100), s.ownership(club1).RewardAmount.Uint64())

	record, found, err := s.k.GetLastDistribution(s.ctx)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Require().Equal(club3, record.WinnerClub)
	s.Require().Equal(uint64(999995), record.Distributed.Uint64())
	s.Require().Equal(uint64(5), record.Undistributed().Uint64())
	s.Require().Equal(uint64(0), s.rewardPool())
}

func (s *KeeperTestSuite) TestCalculateAndDistributeRewards_RunsOncePerPool() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 100))

	s.setRewardAmount(1000)
	s.Require().NoError(s.distribute())
	s.Require().NoError(s.distribute())

	s.Require().Equal(uint64(990), s.stakes(club1)[0].RewardAmount.Uint64())
	s.Require().Equal(uint64(110), s.ownership(club1).RewardAmount.Uint64())
}

func (s *KeeperTestSuite) TestCalculateAndDistributeRewards_TieGoesToSmallerName() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club2)
	s.ownedClub(club1)
	s.Require().NoError(s.stake(sample.AccAddress(), club2, 500))
	s.Require().NoError(s.stake(sample.AccAddress(), club1, 500))

	s.setRewardAmount(1000)
	s.Require().NoError(s.distribute())

	record, _, err := s.k.GetLastDistribution(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(club1, record.WinnerClub)
	s.Require().Equal(uint64(110), s.ownership(club1).RewardAmount.Uint64())
	s.Require().Equal(uint64(100), s.ownership(club2).RewardAmount.Uint64())
}

func (s *KeeperTestSuite) TestCalculateAndDistributeRewards_EmptyPool() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	s.Require().NoError(s.stake(sample.AccAddress(), club1, 100))

	s.Require().NoError(s.distribute())
	s.Require().True(s.stakes(club1)[0].RewardAmount.IsZero())
	_, found, err := s.k.GetLastDistribution(s.ctx)
	s.Require().NoError(err)
	s.Require().False(found)
}

func (s *KeeperTestSuite) TestCalculateAndDistributeRewards_NoStakes() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	s.setRewardAmount(1000)

	s.Require().NoError(s.distribute())
	s.Require().Equal(uint64(1000), s.rewardPool())
	s.Require().Equal(uint64(100), s.ownership(club1).RewardAmount.Uint64())
}

func (s *KeeperTestSuite) TestOperatorMessagesRejectOthers() {
	intruder := sample.AccAddress()

	_, err := s.msgServer.SetRewardAmount(s.ctx, types.NewMsgSetRewardAmount(intruder, math.NewUint(5)))
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().Equal(uint64(0), s.rewardPool())

	_, err = s.msgServer.CalculateAndDistributeRewards(s.ctx, types.NewMsgCalculateAndDistributeRewards(intruder))
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestSetRewardAmount_Overwrites() {
	gomock.InOrder(
		s.bankKeeper.ExpectRewardFunding(s.operator, 10).Return(nil),
		s.bankKeeper.ExpectRewardPayout(s.operator, 10).Return(nil),
		s.bankKeeper.ExpectRewardFunding(s.operator, 3).Return(nil),
	)
	s.setRewardAmount(10)
	s.setRewardAmount(3)
	s.Require().Equal(uint64(3), s.rewardPool())
}

func (s *KeeperTestSuite) TestSetRewardAmount_UnfundedPoolIsNotSet() {
	s.bankKeeper.ExpectRewardFunding(s.operator, 10).Return(errors.New("insufficient funds"))

	_, err := s.msgServer.SetRewardAmount(s.ctx, types.NewMsgSetRewardAmount(s.operator, math.NewUint(10)))
	s.Require().ErrorIs(err, types.ErrSettlement)
	s.Require().Equal(uint64(0), s.rewardPool())
}
