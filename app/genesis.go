package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// Balance is an account's opening funds.
type Balance struct {
	Address string    `json:"address"`
	Coins   sdk.Coins `json:"coins"`
}

// Genesis is the ledger's genesis file.
type Genesis struct {
	GenesisTime time.Time          `json:"genesis_time"`
	Balances    []Balance          `json:"balances"`
	ClubStaking types.GenesisState `json:"clubstaking"`
}

func DefaultGenesis(genesisTime time.Time) Genesis {
	return Genesis{
		GenesisTime: genesisTime.UTC(),
		Balances:    []Balance{},
		ClubStaking: *types.DefaultGenesis(),
	}
}

func (g Genesis) Validate() error {
	seen := make(map[string]struct{})
	for _, balance := range g.Balances {
		if _, err := sdk.AccAddressFromBech32(balance.Address); err != nil {
			return fmt.Errorf("invalid balance address %s: %w", balance.Address, err)
		}
		if _, ok := seen[balance.Address]; ok {
			return fmt.Errorf("duplicated balance for %s", balance.Address)
		}
		seen[balance.Address] = struct{}{}
		if !balance.Coins.IsValid() {
			return fmt.Errorf("invalid coins for %s: %s", balance.Address, balance.Coins)
		}
	}
	return g.ClubStaking.Validate()
}

func ReadGenesisFile(path string) (Genesis, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}
	var genesis Genesis
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return Genesis{}, fmt.Errorf("failed to parse genesis %s: %w", path, err)
	}
	return genesis, nil
}

func WriteGenesisFile(path string, genesis Genesis) error {
	bz, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}
