package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/productscience/clubstaking/testutil/sample"
	"github.com/productscience/clubstaking/x/clubstaking/keeper"
	"github.com/productscience/clubstaking/x/clubstaking/types"
)

func (s *KeeperTestSuite) TestInvariants_HoldAfterActivity() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	s.Require().NoError(s.stake(staker, club1, 40))
	s.Require().NoError(s.withdraw(staker, club1, 40, false))
	s.Require().NoError(s.stake(sample.AccAddress(), club1, 5))

	msg, broken := keeper.AllInvariants(s.k)(s.ctx)
	s.Require().False(broken, msg)
}

func (s *KeeperTestSuite) TestStakesInvariant_DetectsDuplicateStaker() {
	s.bankKeeper.ExpectAny()
	s.ownedClub(club1)
	staker := sample.AccAddress()
	dup := types.ClubStake{ClubName: club1, StakerAddress: staker, StakedAmount: math.NewUint(1), RewardAmount: math.ZeroUint()}
	s.Require().NoError(s.k.SetClubStakes(s.ctx, club1, []types.ClubStake{dup, dup}))

	msg, broken := keeper.StakesInvariant(s.k)(s.ctx)
	s.Require().True(broken)
	s.Require().Contains(msg, "appears twice")
}

func (s *KeeperTestSuite) TestStakesInvariant_DetectsUnownedClub() {
	stake := types.ClubStake{ClubName: club2, StakerAddress: sample.AccAddress(), StakedAmount: math.NewUint(1), RewardAmount: math.ZeroUint()}
	s.Require().NoError(s.k.SetClubStakes(s.ctx, club2, []types.ClubStake{stake}))

	msg, broken := keeper.StakesInvariant(s.k)(s.ctx)
	s.Require().True(broken)
	s.Require().Contains(msg, "no owner")
}

func (s *KeeperTestSuite) TestBondsInvariant_DetectsMisfiledBond() {
	bond := types.ClubBond{ClubName: club2, BonderAddress: sample.AccAddress(), BondedAmount: math.NewUint(3)}
	s.Require().NoError(s.k.SetClubBonds(s.ctx, club1, []types.ClubBond{bond}))

	msg, broken := keeper.BondsInvariant(s.k)(s.ctx)
	s.Require().True(broken)
	s.Require().Contains(msg, "filed under")
}
