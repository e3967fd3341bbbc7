package keeper_test

import (
	"errors"
	"time"

	"cosmossdk.io/math"
	"go.uber.org/mock/gomock"

	"github.com/productscience/clubstaking/testutil/sample"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (s *KeeperTestSuite) TestStakeOnClub_UnownedClub() {
	err := s.stake(sample.AccAddress(), club1, 10)
	s.Require().ErrorIs(err, types.ErrClubNotAvailableForStaking)
	s.Require().True(types.IsNotAvailable(err))
}

func (s *KeeperTestSuite) TestStakeOnClub_MergesRepeatedStakes() {
	s.bankKeeper.ExpectAnyLogs()
	s.bankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any(), "club purchase").Return(nil)
	s.ownedClub(club1)

	staker := sample.AccAddress()
	s.bankKeeper.ExpectCollect(staker, 99).Return(nil)
	s.bankKeeper.ExpectCollect(staker, 1).Return(nil)

	s.Require().NoError(s.stake(staker, club1, 99))
	start := uint64(s.ctx.BlockTime().Unix())
	s.advance(time.Hour)
	s.Require().NoError(s.stake(staker, club1, 1))

	stakes := s.stakes(club1)
	s.Require().Len(stakes, 1)
	s.Require().Equal(staker, stakes[0].StakerAddress)
	s.Require().Equal(uint64(100), stakes[0].StakedAmount.Uint64())
	s.Require().Equal(start, stakes[0].StakingStartTimestamp)
	s.Require().True(stakes[0].RewardAmount.IsZero())
	s.Require().Equal(uint64(100), s.escrow(staker))
}

func (s *KeeperTestSuite) TestStakeOnClub_MergesIntoOneEntry() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()

	for _, amount := range []uint64{33, 11, 42} {
		s.Require().NoError(s.stake(staker, club1, amount))
	}

	stakes := s.stakes(club1)
	s.Require().Len(stakes, 1)
	s.Require().Equal(uint64(86), stakes[0].StakedAmount.Uint64())
	s.Require().Equal(uint64(86), s.escrow(staker))
}

func (s *KeeperTestSuite) TestStakeOnClub_ReleasedClubStillTakesStakes() {
	s.bankKeeper.ExpectAny()
	owner := s.ownedClub(club1)
	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)
	s.Require().NoError(s.release(owner, club1))

	s.Require().NoError(s.stake(sample.AccAddress(), club1, 5))
	s.Require().Len(s.stakes(club1), 1)
}

func (s *KeeperTestSuite) TestStakeOnClub_StakingRewardForNewEntries() {
	s.bankKeeper.ExpectAny()
	params := s.params()
	params.StakingReward = math.NewUint(7)
	s.Require().NoError(s.k.SetParams(s.ctx, params))
	s.ownedClub(club1)

	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 10))
	s.Require().NoError(s.stake(staker, club1, 10))
	s.Require().Equal(uint64(7), s.stakes(club1)[0].RewardAmount.Uint64())
}

func (s *KeeperTestSuite) TestStakeOnClub_RollsBackWhenSettlementFails() {
	s.bankKeeper.ExpectAnyLogs()
	s.bankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any(), "club purchase").Return(nil)
	s.ownedClub(club1)

	staker := sample.AccAddress()
	s.bankKeeper.ExpectCollect(staker, 10).Return(errors.New("insufficient funds"))
	s.Require().ErrorIs(s.stake(staker, club1, 10), types.ErrSettlement)
	s.Require().Empty(s.stakes(club1))
	s.Require().Equal(uint64(0), s.escrow(staker))
}

func (s *KeeperTestSuite) TestWithdrawStake_DeferredPartial() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 99))

	for _, amount := range []uint64{11, 12, 13} {
		s.Require().NoError(s.withdraw(staker, club1, amount, false))
	}

	stakes := s.stakes(club1)
	s.Require().Len(stakes, 1)
	s.Require().Equal(uint64(63), stakes[0].StakedAmount.Uint64())

	bonds, found, err := s.k.GetClubBonds(s.ctx, club1)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Require().Len(bonds, 3)
	for i, amount := range []uint64{11, 12, 13} {
		s.Require().Equal(amount, bonds[i].BondedAmount.Uint64())
		s.Require().Equal(staker, bonds[i].BonderAddress)
		s.Require().Equal(types.DefaultBondingPeriod, bonds[i].BondingDuration)
	}
	s.Require().Equal(uint64(63), s.escrow(staker))
}

func (s *KeeperTestSuite) TestWithdrawStake_DeferredComplete() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 99))

	for _, amount := range []uint64{11, 12, 13, 63} {
		s.Require().NoError(s.withdraw(staker, club1, amount, false))
	}

	s.Require().Empty(s.stakes(club1))
	all, err := s.k.GetAllStakes(s.ctx)
	s.Require().NoError(err)
	s.Require().Empty(all)

	bonds, err := s.k.GetAllBonds(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bonds, 4)
}

func (s *KeeperTestSuite) TestWithdrawStake_Immediate() {
	s.bankKeeper.ExpectAnyLogs()
	s.bankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 100))

	s.bankKeeper.ExpectPayout(staker, 90).Return(nil).Times(1)
	s.bankKeeper.ExpectBurn(10).Return(nil).Times(1)
	s.Require().NoError(s.withdraw(staker, club1, 100, true))

	s.Require().Empty(s.stakes(club1))
	bonds, err := s.k.GetAllBonds(s.ctx)
	s.Require().NoError(err)
	s.Require().Empty(bonds)
	s.Require().Equal(uint64(0), s.escrow(staker))
}

func (s *KeeperTestSuite) TestWithdrawStake_ImmediatePartials() {
	s.bankKeeper.ExpectAnyLogs()
	s.bankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 99))

	// refunds are floored at 90%, the rest is burned
	for _, w := range []struct{ amount, refund, burn uint64 }{{11, 9, 2}, {12, 10, 2}, {13, 11, 2}} {
		s.bankKeeper.ExpectPayout(staker, w.refund).Return(nil).Times(1)
		s.bankKeeper.ExpectBurn(w.burn).Return(nil).Times(1)
		s.Require().NoError(s.withdraw(staker, club1, w.amount, true))
	}

	stakes := s.stakes(club1)
	s.Require().Len(stakes, 1)
	s.Require().Equal(uint64(63), stakes[0].StakedAmount.Uint64())
	bonds, err := s.k.GetAllBonds(s.ctx)
	s.Require().NoError(err)
	s.Require().Empty(bonds)

	s.bankKeeper.ExpectPayout(staker, 56).Return(nil).Times(1)
	s.bankKeeper.ExpectBurn(7).Return(nil).Times(1)
	s.Require().NoError(s.withdraw(staker, club1, 63, true))
	s.Require().Empty(s.stakes(club1))
	s.Require().Equal(uint64(0), s.escrow(staker))
}

func (s *KeeperTestSuite) TestWithdrawStake_ImmediateRoundsRefundDown() {
	s.bankKeeper.ExpectAnyLogs()
	s.bankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 15))

	// 15 * 90 / 100 = 13.5
	s.bankKeeper.ExpectPayout(staker, 13).Return(nil)
	s.bankKeeper.ExpectBurn(2).Return(nil)
	s.Require().NoError(s.withdraw(staker, club1, 15, true))
}

func (s *KeeperTestSuite) TestWithdrawStake_MoreThanStaked() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 10))

	err := s.withdraw(staker, club1, 11, false)
	s.Require().ErrorIs(err, types.ErrInsufficientStake)
	s.Require().True(types.IsInvalidState(err))
	s.Require().Equal(uint64(10), s.stakes(club1)[0].StakedAmount.Uint64())
}

func (s *KeeperTestSuite) TestWithdrawStake_NoStake() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	s.Require().NoError(s.stake(sample.AccAddress(), club1, 10))

	err := s.withdraw(sample.AccAddress(), club1, 1, false)
	s.Require().ErrorIs(err, types.ErrStakeNotFound)
	s.Require().Len(s.stakes(club1), 1)
}

func (s *KeeperTestSuite) TestWithdrawStake_UnownedClub() {
	err := s.withdraw(sample.AccAddress(), club1, 1, false)
	s.Require().ErrorIs(err, types.ErrClubNotAvailableForStaking)
}

func (s *KeeperTestSuite) TestWithdrawStake_EscrowSaturatesAtZero() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 50))

	s.Require().NoError(s.k.SetEscrow(s.ctx, sdkAddr(staker), math.NewUint(20)))
	s.Require().NoError(s.withdraw(staker, club1, 30, false))
	s.Require().Equal(uint64(0), s.escrow(staker))
	s.Require().Equal(uint64(20), s.stakes(club1)[0].StakedAmount.Uint64())
}
