package types

type SubSystem uint8

const (
	Ownership SubSystem = iota
	Staking
	Bonding
	Rewards
	Settlement
	Config
)

func (s SubSystem) String() string {
	switch s {
	case Ownership:
		return "Ownership"
	case Staking:
		return "Staking"
	case Bonding:
		return "Bonding"
	case Rewards:
		return "Rewards"
	case Settlement:
		return "Settlement"
	case Config:
		return "Config"
	default:
		return "Unknown"
	}
}
