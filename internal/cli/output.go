package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
)

// accountResult is the CLI view of a registered account
type accountResult struct {
	Username  string    `json:"username"`
	PlayerID  string    `json:"player_id"`
	CreatedAt time.Time `json:"created_at"`
}

// profileResult is the CLI view of a player profile
type profileResult struct {
	Profile model.PlayerProfile `json:"profile"`
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case accountResult:
		o.printAccount(v)
	case profileResult:
		o.printProfile(v.Profile)
	default:
		fmt.Printf("%+v\n", data)
	}
}

func (o *Output) printAccount(a accountResult) {
	fmt.Printf("Username:   %s\n", a.Username)
	fmt.Printf("Player ID:  %s\n", a.PlayerID)
	fmt.Printf("Created:    %s\n", a.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printProfile(p model.PlayerProfile) {
	name := p.Username
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("Player:     %s [%s]\n", name, p.ID)
	fmt.Printf("Level:      %d (exp %.0f/%.0f, x%.1f)\n", p.Level, p.CurrentExp, p.NextLevelExp, p.ExpMultiplier)
	fmt.Printf("Health:     %.0f/%.0f\n", p.Health, p.MaxHealth)
	fmt.Printf("Mana:       %.0f/%.0f\n", p.Mana, p.MaxMana)
	fmt.Printf("Damage:     %.1f (crit %.0f%% for %.0f%%)\n", p.BaseDamage, p.CriticalChance, p.CriticalDamage)
	fmt.Printf("Attributes: STR %d / DEX %d\n", p.Strength, p.Dexterity)
}
