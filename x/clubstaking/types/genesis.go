package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the clubstaking module's genesis state.
type GenesisState struct {
	Params            Params              `json:"params"`
	OwnershipList     []ClubOwnership     `json:"ownership_list"`
	PreviousOwnerList []ClubPreviousOwner `json:"previous_owner_list"`
	StakeList         []ClubStake         `json:"stake_list"`
	BondList          []ClubBond          `json:"bond_list"`
	// StakedClubs and BondedClubs name every club holding a list, so lists
	// left empty survive an export.
	StakedClubs      []string            `json:"staked_clubs"`
	BondedClubs      []string            `json:"bonded_clubs"`
	EscrowList       []EscrowBalance     `json:"escrow_list"`
	RewardPool       math.Uint           `json:"reward_pool"`
	LastDistribution *DistributionRecord `json:"last_distribution,omitempty"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:            DefaultParams(),
		OwnershipList:     []ClubOwnership{},
		PreviousOwnerList: []ClubPreviousOwner{},
		StakeList:         []ClubStake{},
		BondList:          []ClubBond{},
		StakedClubs:       []string{},
		BondedClubs:       []string{},
		EscrowList:        []EscrowBalance{},
		RewardPool:        math.ZeroUint(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	owned := make(map[string]struct{}, len(gs.OwnershipList))
	for _, elem := range gs.OwnershipList {
		if err := ValidateClubName(elem.ClubName); err != nil {
			return err
		}
		if _, ok := owned[elem.ClubName]; ok {
			return fmt.Errorf("duplicated ownership record for club %s", elem.ClubName)
		}
		if elem.PricePaid.IsNil() || elem.RewardAmount.IsNil() {
			return fmt.Errorf("ownership record for club %s is missing amounts", elem.ClubName)
		}
		owned[elem.ClubName] = struct{}{}
	}

	previous := make(map[string]struct{}, len(gs.PreviousOwnerList))
	for _, elem := range gs.PreviousOwnerList {
		if _, ok := previous[elem.ClubName]; ok {
			return fmt.Errorf("duplicated previous owner record for club %s", elem.ClubName)
		}
		if elem.RewardAmount.IsNil() {
			return fmt.Errorf("previous owner record for club %s is missing its reward", elem.ClubName)
		}
		previous[elem.ClubName] = struct{}{}
	}

	staked := make(map[string]struct{}, len(gs.StakeList))
	for _, elem := range gs.StakeList {
		if _, ok := owned[elem.ClubName]; !ok {
			return fmt.Errorf("stake on club %s which has no owner", elem.ClubName)
		}
		key := elem.ClubName + "/" + elem.StakerAddress
		if _, ok := staked[key]; ok {
			return fmt.Errorf("duplicated stake for staker %s on club %s", elem.StakerAddress, elem.ClubName)
		}
		if elem.StakedAmount.IsNil() || elem.StakedAmount.IsZero() {
			return fmt.Errorf("zero stake for staker %s on club %s", elem.StakerAddress, elem.ClubName)
		}
		if elem.RewardAmount.IsNil() {
			return fmt.Errorf("stake for staker %s on club %s is missing its reward", elem.StakerAddress, elem.ClubName)
		}
		staked[key] = struct{}{}
	}

	for _, elem := range gs.BondList {
		if err := ValidateClubName(elem.ClubName); err != nil {
			return err
		}
		if elem.BondedAmount.IsNil() || elem.BondedAmount.IsZero() {
			return fmt.Errorf("empty bond for %s on club %s", elem.BonderAddress, elem.ClubName)
		}
	}

	if err := validateClubKeys("staked", gs.StakedClubs); err != nil {
		return err
	}
	if err := validateClubKeys("bonded", gs.BondedClubs); err != nil {
		return err
	}

	escrows := make(map[string]struct{}, len(gs.EscrowList))
	for _, elem := range gs.EscrowList {
		if _, ok := escrows[elem.Address]; ok {
			return fmt.Errorf("duplicated escrow balance for %s", elem.Address)
		}
		if elem.Amount.IsNil() {
			return fmt.Errorf("escrow balance for %s is missing its amount", elem.Address)
		}
		escrows[elem.Address] = struct{}{}
	}

	if gs.RewardPool.IsNil() {
		return fmt.Errorf("reward pool must be set")
	}
	return nil
}

func validateClubKeys(kind string, clubs []string) error {
	seen := make(map[string]struct{}, len(clubs))
	for _, club := range clubs {
		if err := ValidateClubName(club); err != nil {
			return err
		}
		if _, ok := seen[club]; ok {
			return fmt.Errorf("duplicated %s club %s", kind, club)
		}
		seen[club] = struct{}{}
	}
	return nil
}
