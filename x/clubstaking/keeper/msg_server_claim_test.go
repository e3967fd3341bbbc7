package keeper_test

import (
	"errors"
	"time"

	"cosmossdk.io/math"
	"go.uber.org/mock/gomock"

	"github.com/productscience/clubstaking/testutil/sample"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (s *KeeperTestSuite) claimOwner(owner, club string, amount uint64) error {
	_, err := s.msgServer.ClaimOwnerRewards(s.ctx, types.NewMsgClaimOwnerRewards(owner, owner, club, math.NewUint(amount)))
	return err
}

func (s *KeeperTestSuite) claimPrevious(previous, club string, amount uint64) error {
	_, err := s.msgServer.ClaimPreviousOwnerRewards(s.ctx, types.NewMsgClaimPreviousOwnerRewards(previous, previous, club, math.NewUint(amount)))
	return err
}

func (s *KeeperTestSuite) claimStaker(staker, club string, amount uint64) error {
	_, err := s.msgServer.ClaimRewards(s.ctx, types.NewMsgClaimRewards(staker, staker, club, math.NewUint(amount)))
	return err
}

func (s *KeeperTestSuite) TestClaimOwnerRewards() {
	s.bankKeeper.ExpectAnyLogs()
	owner := sample.AccAddress()
	s.bankKeeper.ExpectCollect(owner, testClubPrice).Return(nil)
	s.Require().NoError(s.buy(owner, "", club1))

	s.bankKeeper.ExpectRewardPayout(owner, 10).Return(nil).Times(1)
	s.Require().NoError(s.claimOwner(owner, club1, 10))
	s.Require().Equal(uint64(90), s.ownership(club1).RewardAmount.Uint64())

	err := s.claimOwner(owner, club1, 91)
	s.Require().ErrorIs(err, types.ErrInsufficientRewards)
	s.Require().Equal(uint64(90), s.ownership(club1).RewardAmount.Uint64())
}

func (s *KeeperTestSuite) TestClaimOwnerRewards_NotOwner() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)

	err := s.claimOwner(sample.AccAddress(), club1, 1)
	s.Require().ErrorIs(err, types.ErrNotClubOwner)
	s.Require().True(types.IsInvalidState(err))
	s.Require().Equal(uint64(100), s.ownership(club1).RewardAmount.Uint64())
}

func (s *KeeperTestSuite) TestClaimOwnerRewards_UnknownClub() {
	err := s.claimOwner(sample.AccAddress(), club1, 1)
	s.Require().ErrorIs(err, types.ErrClubNotFound)
}

func (s *KeeperTestSuite) TestClaimOwnerRewards_RollsBackWhenPayoutFails() {
	s.bankKeeper.ExpectAnyLogs()
	owner := sample.AccAddress()
	s.bankKeeper.ExpectCollect(owner, testClubPrice).Return(nil)
	s.Require().NoError(s.buy(owner, "", club1))

	s.bankKeeper.ExpectRewardPayout(owner, 50).Return(errors.New("rewards account empty"))
	s.Require().ErrorIs(s.claimOwner(owner, club1, 50), types.ErrSettlement)
	s.Require().Equal(uint64(100), s.ownership(club1).RewardAmount.Uint64())
}

func (s *KeeperTestSuite) TestClaimPreviousOwnerRewards() {
	s.bankKeeper.ExpectAny()
	seller := s.ownedClub(club1)
	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)
	s.Require().NoError(s.release(seller, club1))
	s.Require().NoError(s.buy(sample.AccAddress(), seller, club1))

	s.Require().NoError(s.claimPrevious(seller, club1, 40))
	previous, found, err := s.k.GetClubPreviousOwner(s.ctx, club1)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Require().Equal(uint64(60), previous.RewardAmount.Uint64())

	s.Require().ErrorIs(s.claimPrevious(seller, club1, 61), types.ErrInsufficientRewards)
	s.Require().ErrorIs(s.claimPrevious(sample.AccAddress(), club1, 1), types.ErrNotPreviousOwner)
}

func (s *KeeperTestSuite) TestClaimPreviousOwnerRewards_NoRecord() {
	s.bankKeeper.ExpectAny()
	owner := s.ownedClub(club1)

	err := s.claimPrevious(owner, club1, 1)
	s.Require().ErrorIs(err, types.ErrPreviousOwnerNotFound)
	s.Require().True(types.IsNotAvailable(err))
}

func (s *KeeperTestSuite) TestClaimRewards_Staker() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 500))

	_, err := s.msgServer.SetRewardAmount(s.ctx, types.NewMsgSetRewardAmount(s.operator, math.NewUint(1000)))
	s.Require().NoError(err)
	_, err = s.msgServer.CalculateAndDistributeRewards(s.ctx, types.NewMsgCalculateAndDistributeRewards(s.operator))
	s.Require().NoError(err)

	// sole staker gets both the winner share and the all-stakers share
	s.Require().Equal(uint64(990), s.stakes(club1)[0].RewardAmount.Uint64())

	s.Require().NoError(s.claimStaker(staker, club1, 900))
	s.Require().Equal(uint64(90), s.stakes(club1)[0].RewardAmount.Uint64())
	s.Require().ErrorIs(s.claimStaker(staker, club1, 91), types.ErrInsufficientRewards)
}

func (s *KeeperTestSuite) TestClaimRewards_NoStake() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)

	err := s.claimStaker(sample.AccAddress(), club1, 1)
	s.Require().ErrorIs(err, types.ErrStakeNotFound)
	s.Require().True(types.IsNotAvailable(err))
}

func (s *KeeperTestSuite) TestClaimRewards_PaidFromRewardsAccountOnly() {
	s.bankKeeper.ExpectAnyLogs()
	s.bankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 500))

	s.bankKeeper.ExpectRewardFunding(s.operator, 1400).Return(nil).Times(1)
	s.setRewardAmount(1400)
	s.Require().NoError(s.distribute())
	s.Require().Equal(uint64(1386), s.stakes(club1)[0].RewardAmount.Uint64())

	s.bankKeeper.ExpectRewardPayout(staker, 1386).Return(nil).Times(1)
	s.Require().NoError(s.claimStaker(staker, club1, 1386))

	// the principal is still refunded in full from the module account
	s.bankKeeper.ExpectPayout(staker, 450).Return(nil).Times(1)
	s.bankKeeper.ExpectBurn(50).Return(nil).Times(1)
	s.Require().NoError(s.withdraw(staker, club1, 500, true))
}

func (s *KeeperTestSuite) TestClaimRewards_UnfundedRewardsFailWithoutTouchingStake() {
	s.bankKeeper.ExpectAnyLogs()
	s.bankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 500))
	s.Require().NoError(s.k.SetClubStakes(s.ctx, club1, []types.ClubStake{{
		ClubName:      club1,
		StakerAddress: staker,
		StakedAmount:  math.NewUint(500),
		RewardAmount:  math.NewUint(20),
	}}))

	s.bankKeeper.ExpectRewardPayout(staker, 20).Return(errors.New("rewards account empty"))
	s.Require().ErrorIs(s.claimStaker(staker, club1, 20), types.ErrSettlement)
	s.Require().Equal(uint64(20), s.stakes(club1)[0].RewardAmount.Uint64())
	s.Require().Equal(uint64(500), s.escrow(staker))
}
