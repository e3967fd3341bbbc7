package keeper_test

import (
	"errors"
	"time"

	sdkerrors "cosmossdk.io/errors"
	"go.uber.org/mock/gomock"

	"github.com/productscience/clubstaking/testutil/sample"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (s *KeeperTestSuite) TestBuyClub_FirstPurchase() {
	buyer := sample.AccAddress()
	s.bankKeeper.ExpectCollect(buyer, testClubPrice).Return(nil).Times(1)
	s.bankKeeper.EXPECT().
		LogSubAccountTransaction(gomock.Any(), types.ModuleName, buyer, types.SubAccountEscrow, gomock.Any(), "club purchase").
		Times(1)

	s.Require().NoError(s.buy(buyer, "", club1))

	ownership := s.ownership(club1)
	s.Require().Equal(buyer, ownership.OwnerAddress)
	s.Require().Equal(uint64(testClubPrice), ownership.PricePaid.Uint64())
	s.Require().Equal(uint64(100), ownership.RewardAmount.Uint64())
	s.Require().False(ownership.Released)
	s.Require().Equal(uint64(s.ctx.BlockTime().Unix()), ownership.StartTimestamp)
	s.Require().Equal(types.DefaultLockingPeriod, ownership.LockingPeriod)
	s.Require().Equal(uint64(testClubPrice), s.escrow(buyer))

	events := s.ctx.EventManager().Events()
	s.Require().NotEmpty(events)
	s.Require().Equal(types.EventTypeBuyClub, events[len(events)-1].Type)
}

func (s *KeeperTestSuite) TestBuyClub_HeldClubCannotBeBought() {
	s.bankKeeper.ExpectAny()
	owner := s.ownedClub(club1)

	err := s.buy(sample.AccAddress(), "", club1)
	s.Require().ErrorIs(err, types.ErrOwnerNotReleased)
	s.Require().True(types.IsInvalidState(err))
	s.Require().Equal(owner, s.ownership(club1).OwnerAddress)
}

func (s *KeeperTestSuite) TestBuyClub_CreatorMustBeBuyer() {
	buyer := sample.AccAddress()
	_, err := s.msgServer.BuyClub(s.ctx, types.NewMsgBuyClub(sample.AccAddress(), buyer, "", club1))
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	_, found, err := s.k.GetClubOwnership(s.ctx, club1)
	s.Require().NoError(err)
	s.Require().False(found)
}

func (s *KeeperTestSuite) TestBuyClub_RejectsInvalidMessage() {
	buyer := sample.AccAddress()
	_, err := s.msgServer.BuyClub(s.ctx, types.NewMsgBuyClub(buyer, buyer, "", ""))
	s.Require().ErrorIs(err, types.ErrInvalidClubName)
}

func (s *KeeperTestSuite) TestBuyClub_ResaleAfterRelease() {
	s.bankKeeper.ExpectAnyLogs()
	seller := sample.AccAddress()
	buyer := sample.AccAddress()

	s.bankKeeper.ExpectCollect(seller, testClubPrice).Return(nil).Times(1)
	s.Require().NoError(s.buy(seller, "", club1))

	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)
	s.Require().NoError(s.release(seller, club1))

	gomock.InOrder(
		s.bankKeeper.ExpectCollect(buyer, testClubPrice).Return(nil),
		s.bankKeeper.ExpectPayout(seller, testClubPrice).Return(nil),
	)
	s.Require().NoError(s.buy(buyer, seller, club1))

	ownership := s.ownership(club1)
	s.Require().Equal(buyer, ownership.OwnerAddress)
	s.Require().False(ownership.Released)
	s.Require().Equal(uint64(100), ownership.RewardAmount.Uint64())

	previous, found, err := s.k.GetClubPreviousOwner(s.ctx, club1)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Require().Equal(seller, previous.PreviousOwnerAddress)
	s.Require().Equal(uint64(100), previous.RewardAmount.Uint64())

	s.Require().Equal(uint64(0), s.escrow(seller))
	s.Require().Equal(uint64(testClubPrice), s.escrow(buyer))
}

func (s *KeeperTestSuite) TestBuyClub_ResaleRefundsOnlyThePurchase() {
	s.bankKeeper.ExpectAnyLogs()
	seller := sample.AccAddress()
	buyer := sample.AccAddress()

	s.bankKeeper.ExpectCollect(seller, testClubPrice).Return(nil)
	s.Require().NoError(s.buy(seller, "", club1))
	s.bankKeeper.ExpectCollect(seller, 500).Return(nil)
	s.Require().NoError(s.stake(seller, club1, 500))
	s.Require().Equal(uint64(testClubPrice+500), s.escrow(seller))

	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)
	s.Require().NoError(s.release(seller, club1))

	gomock.InOrder(
		s.bankKeeper.ExpectCollect(buyer, testClubPrice).Return(nil),
		s.bankKeeper.ExpectPayout(seller, testClubPrice).Return(nil),
	)
	s.Require().NoError(s.buy(buyer, seller, club1))
	s.Require().Equal(uint64(500), s.escrow(seller))
	s.Require().Equal(uint64(500), s.stakes(club1)[0].StakedAmount.Uint64())

	// the stake comes back once, through its own withdrawal
	s.bankKeeper.ExpectPayout(seller, 450).Return(nil)
	s.bankKeeper.ExpectBurn(50).Return(nil)
	s.Require().NoError(s.withdraw(seller, club1, 500, true))
	s.Require().Equal(uint64(0), s.escrow(seller))
}

func (s *KeeperTestSuite) TestBuyClub_ReleasedClubWithoutSeller() {
	s.bankKeeper.ExpectAny()
	first := s.ownedClub(club1)
	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)
	s.Require().NoError(s.release(first, club1))

	second := sample.AccAddress()
	s.Require().NoError(s.buy(second, "", club1))
	s.Require().Equal(second, s.ownership(club1).OwnerAddress)

	_, found, err := s.k.GetClubPreviousOwner(s.ctx, club1)
	s.Require().NoError(err)
	s.Require().False(found)
}

func (s *KeeperTestSuite) TestBuyClub_SellerMustBeOwner() {
	s.bankKeeper.ExpectAny()
	owner := s.ownedClub(club1)
	s.advance(time.Duration(types.DefaultLockingPeriod) * time.Second)
	s.Require().NoError(s.release(owner, club1))

	err := s.buy(sample.AccAddress(), sample.AccAddress(), club1)
	s.Require().ErrorIs(err, types.ErrSellerNotOwner)
	s.Require().Equal(owner, s.ownership(club1).OwnerAddress)
}

func (s *KeeperTestSuite) TestBuyClub_SellerOnNeverOwnedClub() {
	err := s.buy(sample.AccAddress(), sample.AccAddress(), club1)
	s.Require().ErrorIs(err, types.ErrSellerNotOwner)
}

func (s *KeeperTestSuite) TestBuyClub_RollsBackWhenSettlementFails() {
	buyer := sample.AccAddress()
	s.bankKeeper.ExpectCollect(buyer, testClubPrice).Return(errors.New("insufficient funds")).Times(1)

	err := s.buy(buyer, "", club1)
	s.Require().Error(err)
	s.Require().True(sdkerrors.IsOf(err, types.ErrSettlement))

	_, found, err := s.k.GetClubOwnership(s.ctx, club1)
	s.Require().NoError(err)
	s.Require().False(found)
	s.Require().Equal(uint64(0), s.escrow(buyer))
	s.Require().Empty(s.ctx.EventManager().Events())
}
