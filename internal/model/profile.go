package model

// Starting stats for a freshly created player.
const (
	DefaultLevel         = 1
	DefaultMaxHealth     = 100.0
	DefaultMaxMana       = 50.0
	DefaultNextLevelExp  = 100.0
	DefaultExpMultiplier = 1.1
	DefaultBaseDamage    = 5.0
	DefaultCritChance    = 5.0
	DefaultCritDamage    = 150.0
	DefaultStrength      = 1
	DefaultDexterity     = 1
)

// PlayerProfile is the persisted game state for one player.
// Its lifecycle is independent of the owning Account: a profile may be
// synthesized default-valued when none has been saved yet.
type PlayerProfile struct {
	ID       PlayerID `json:"id"`
	Username string   `json:"username"`

	Level int `json:"level"`

	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`

	Mana    float64 `json:"mana"`
	MaxMana float64 `json:"max_mana"`

	CurrentExp          float64 `json:"current_exp"`
	NextLevelExp        float64 `json:"next_level_exp"`
	InitialNextLevelExp float64 `json:"initial_next_level_exp"`
	ExpMultiplier       float64 `json:"exp_multiplier"`

	BaseDamage     float64 `json:"base_damage"`
	CriticalChance float64 `json:"critical_chance"`
	CriticalDamage float64 `json:"critical_damage"`

	Strength  int `json:"strength"`
	Dexterity int `json:"dexterity"`
}

// DefaultProfile returns the starting profile for a player id.
// Every numeric field is populated; nothing is left zero by accident.
// The username is unknown at this point and stays empty.
func DefaultProfile(id PlayerID) *PlayerProfile {
	return &PlayerProfile{
		ID:                  id,
		Level:               DefaultLevel,
		Health:              DefaultMaxHealth,
		MaxHealth:           DefaultMaxHealth,
		Mana:                DefaultMaxMana,
		MaxMana:             DefaultMaxMana,
		CurrentExp:          0,
		NextLevelExp:        DefaultNextLevelExp,
		InitialNextLevelExp: DefaultNextLevelExp,
		ExpMultiplier:       DefaultExpMultiplier,
		BaseDamage:          DefaultBaseDamage,
		CriticalChance:      DefaultCritChance,
		CriticalDamage:      DefaultCritDamage,
		Strength:            DefaultStrength,
		Dexterity:           DefaultDexterity,
	}
}

// Clone returns a copy of the profile.
func (p *PlayerProfile) Clone() *PlayerProfile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
