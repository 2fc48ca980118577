package testutils

import (
	"github.com/firetop/gamebook-api/internal/entities/gamebook"
)

// TestPlayerID is the default player identifier for test fixtures
const TestPlayerID = "player_test_001"

// CreateTestPlayerRecord creates a record mid-adventure with sensible
// defaults: a finished character standing at section 1.
func CreateTestPlayerRecord(playerID string) *gamebook.PlayerRecord {
	rec := gamebook.New(playerID)
	rec.CurrentSection = "1"
	rec.Attributes = gamebook.AttributeBlock{
		SkillInitial: 9, SkillCurrent: 9,
		StaminaInitial: 18, StaminaCurrent: 18,
		LuckInitial: 10, LuckCurrent: 10,
	}
	rec.Inventory = []string{"Espada", "Armadura de Couro", "Lanterna"}
	rec.Provisions = 10
	rec.Potion = &gamebook.Potion{Name: "Poção da Fortuna", Doses: 2, Type: gamebook.PotionFortune}
	return rec
}
