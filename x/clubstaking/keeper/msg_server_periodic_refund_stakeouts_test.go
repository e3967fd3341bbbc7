package keeper_test

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/productscience/clubstaking/testutil/sample"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (s *KeeperTestSuite) refundStakeouts(creator string) error {
	_, err := s.msgServer.PeriodicRefundStakeouts(s.ctx, types.NewMsgPeriodicRefundStakeouts(creator))
	return err
}

func (s *KeeperTestSuite) TestPeriodicRefundStakeouts_PaysMaturedBondsOnly() {
	s.bankKeeper.ExpectAnyLogs()
	s.bankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 99))

	s.Require().NoError(s.withdraw(staker, club1, 63, false))
	s.advance(24 * time.Hour)
	for _, amount := range []uint64{11, 12, 13} {
		s.Require().NoError(s.withdraw(staker, club1, amount, false))
	}

	// the first bond is now exactly one bonding period old
	s.advance(time.Duration(types.DefaultBondingPeriod)*time.Second - 24*time.Hour)
	s.bankKeeper.ExpectPayout(staker, 63).Return(nil).Times(1)
	s.Require().NoError(s.refundStakeouts(s.operator))

	bonds, err := s.k.GetAllBonds(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bonds, 3)
	for i, amount := range []uint64{11, 12, 13} {
		s.Require().Equal(amount, bonds[i].BondedAmount.Uint64())
	}

	// nothing else matured, a second sweep pays nothing
	s.Require().NoError(s.refundStakeouts(s.operator))
	bonds, err = s.k.GetAllBonds(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bonds, 3)
}

func (s *KeeperTestSuite) TestPeriodicRefundStakeouts_EmptiesMaturedClub() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	s.ownedClub(club2)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 10))
	s.Require().NoError(s.stake(staker, club2, 10))
	s.Require().NoError(s.withdraw(staker, club1, 10, false))
	s.Require().NoError(s.withdraw(staker, club2, 10, false))

	s.advance(time.Duration(types.DefaultBondingPeriod) * time.Second)
	s.Require().NoError(s.refundStakeouts(s.operator))

	for _, club := range []string{club1, club2} {
		bonds, found, err := s.k.GetClubBonds(s.ctx, club)
		s.Require().NoError(err)
		s.Require().True(found, "emptied bond list is kept for %s", club)
		s.Require().Empty(bonds)
	}
}

func (s *KeeperTestSuite) TestPeriodicRefundStakeouts_OperatorOnly() {
	err := s.refundStakeouts(sample.AccAddress())
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}
