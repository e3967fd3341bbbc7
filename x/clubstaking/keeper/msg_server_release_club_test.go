package keeper_test

import (
	"time"

	"github.com/productscience/clubstaking/testutil/sample"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (s *KeeperTestSuite) TestReleaseClub_BeforeLockingPeriod() {
	s.bankKeeper.ExpectAny()
	owner := s.ownedClub(club1)

	s.advance(time.Duration(types.DefaultLockingPeriod-1) * time.Second)
	err := s.release(owner, club1)
	s.Require().ErrorIs(err, types.ErrLockingPeriodNotOver)
	s.Require().True(types.IsInvalidState(err))
	s.Require().False(s.ownership(club1).Released)
}

func (s *KeeperTestSuite) TestReleaseClub_AtEndOfLockingPeriod() {
	s.bankKeeper.ExpectAny()
	owner := s.ownedClub(club1)

	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)
	s.Require().NoError(s.release(owner, club1))
	s.Require().True(s.ownership(club1).Released)

	// releasing twice is harmless
	s.Require().NoError(s.release(owner, club1))
	s.Require().True(s.ownership(club1).Released)
}

func (s *KeeperTestSuite) TestReleaseClub_OnlyOwner() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)

	err := s.release(sample.AccAddress(), club1)
	s.Require().ErrorIs(err, types.ErrReleaserNotOwner)
	s.Require().False(s.ownership(club1).Released)
}

func (s *KeeperTestSuite) TestReleaseClub_UnknownClub() {
	err := s.release(sample.AccAddress(), club1)
	s.Require().ErrorIs(err, types.ErrClubNotFound)
	s.Require().True(types.IsNotAvailable(err))
}

func (s *KeeperTestSuite) TestReleaseClub_CreatorMustBeOwner() {
	s.bankKeeper.ExpectAny()
	owner := s.ownedClub(club1)
	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)

	_, err := s.msgServer.ReleaseClub(s.ctx, types.NewMsgReleaseClub(sample.AccAddress(), owner, club1))
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}
