package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
)

func newTestRecord() *gamebook.PlayerRecord {
	rec := gamebook.New("player_1")
	rec.Attributes = gamebook.AttributeBlock{
		SkillInitial: 9, SkillCurrent: 9,
		StaminaInitial: 18, StaminaCurrent: 18,
		LuckInitial: 10, LuckCurrent: 10,
	}
	return rec
}

func TestApplyAttributeModifierDefault(t *testing.T) {
	rec := newTestRecord()
	rec.Attributes.StaminaCurrent = 10

	notices := applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeStamina,
		Amount:    -4,
	})

	assert.Equal(t, 6, rec.Attributes.StaminaCurrent)
	assert.Len(t, notices, 1)
}

func TestApplyAttributeModifierClampsToInitial(t *testing.T) {
	rec := newTestRecord()
	rec.Attributes.StaminaCurrent = 16

	applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeStamina,
		Amount:    50,
	})

	assert.Equal(t, 18, rec.Attributes.StaminaCurrent)
}

func TestApplyAttributeModifierFloors(t *testing.T) {
	rec := newTestRecord()

	applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeStamina,
		Amount:    -100,
	})
	assert.Equal(t, 0, rec.Attributes.StaminaCurrent, "stamina floors at 0")

	applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeSkill,
		Amount:    -100,
	})
	assert.Equal(t, 1, rec.Attributes.SkillCurrent, "skill floors at 1")
}

func TestApplyAttributeModifierRestoreFull(t *testing.T) {
	rec := newTestRecord()
	rec.Attributes.StaminaCurrent = 3

	applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeStamina,
		Mode:      gamebook.ModeRestoreFull,
	})

	assert.Equal(t, 18, rec.Attributes.StaminaCurrent)
}

func TestApplyAttributeModifierRestoreUpTo(t *testing.T) {
	rec := newTestRecord()
	rec.Attributes.StaminaCurrent = 10

	applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeStamina,
		Amount:    4,
		Mode:      gamebook.ModeRestoreUpTo,
	})
	assert.Equal(t, 14, rec.Attributes.StaminaCurrent)

	applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeStamina,
		Amount:    10,
		Mode:      gamebook.ModeRestoreUpTo,
	})
	assert.Equal(t, 18, rec.Attributes.StaminaCurrent, "restore never exceeds initial")
}

func TestApplyAttributeModifierBothShiftsCeiling(t *testing.T) {
	rec := newTestRecord()

	applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeSkill,
		Amount:    2,
		Mode:      gamebook.ModeBoth,
	})

	assert.Equal(t, 11, rec.Attributes.SkillInitial)
	assert.Equal(t, 11, rec.Attributes.SkillCurrent, "mode both is never clamped")
}

func TestApplyAttributeModifierInvariant(t *testing.T) {
	// For every mode except "both", current stays inside
	// [floor, initial] whatever the starting values and amount.
	modes := []gamebook.ModifierMode{
		gamebook.ModeAdjust, gamebook.ModeRestoreFull, gamebook.ModeRestoreUpTo,
	}
	attributes := []gamebook.Attribute{
		gamebook.AttributeSkill, gamebook.AttributeStamina, gamebook.AttributeLuck,
	}

	for _, mode := range modes {
		for _, attr := range attributes {
			for _, current := range []int{0, 1, 5, 12} {
				for _, amount := range []int{-30, -2, 0, 3, 40} {
					rec := newTestRecord()
					rec.Attributes.SetInitial(attr, 12)
					rec.Attributes.SetCurrent(attr, current)

					applyAttributeModifier(rec, &gamebook.AttributeModifier{
						Attribute: attr,
						Amount:    amount,
						Mode:      mode,
					})

					got := rec.Attributes.Current(attr)
					assert.GreaterOrEqual(t, got, attr.Floor(),
						"attr %s mode %s current %d amount %d", attr, mode, current, amount)
					assert.LessOrEqual(t, got, rec.Attributes.Initial(attr),
						"attr %s mode %s current %d amount %d", attr, mode, current, amount)
				}
			}
		}
	}
}

func TestApplyAttributeModifierGold(t *testing.T) {
	rec := newTestRecord()
	rec.Gold = 5

	applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeGold,
		Amount:    10,
	})

	assert.Equal(t, 15, rec.Gold)
}

func TestApplyItemFoundGold(t *testing.T) {
	rec := newTestRecord()

	applyItemFound(rec, &gamebook.ItemFound{Item: "Ouro", Quantity: 8})

	assert.Equal(t, 8, rec.Gold)
	assert.Empty(t, rec.Inventory)
}

func TestApplyItemFoundJewel(t *testing.T) {
	rec := newTestRecord()

	applyItemFound(rec, &gamebook.ItemFound{Item: "Jóia de Olho de Sapo", GoldValue: 20})

	assert.Len(t, rec.Jewels, 1)
	assert.Equal(t, 20, rec.Jewels[0].Value)
	assert.Empty(t, rec.Inventory)
}

func TestApplyItemFoundInventory(t *testing.T) {
	rec := newTestRecord()

	applyItemFound(rec, &gamebook.ItemFound{Item: "Corda"})
	applyItemFound(rec, &gamebook.ItemFound{Item: "Corda"})

	assert.Equal(t, []string{"Corda", "Corda"}, rec.Inventory, "duplicates are allowed")
}

func TestApplyItemFoundMandatorySwapStillGrants(t *testing.T) {
	rec := newTestRecord()
	rec.Inventory = []string{"Espada"}

	notices := applyItemFound(rec, &gamebook.ItemFound{Item: "Machado de Guerra", MandatorySwap: true})

	assert.Contains(t, rec.Inventory, "Machado de Guerra")
	assert.Len(t, notices, 1)
	assert.Contains(t, notices[0], "descartar")
}

func TestRequirementMet(t *testing.T) {
	rec := newTestRecord()
	rec.Gold = 10
	rec.Inventory = []string{"Chave de Prata", "Espada"}
	rec.GainKnowledge("mapa_da_montanha")

	assert.True(t, requirementMet(rec, nil))
	assert.True(t, requirementMet(rec, &gamebook.Requirement{Gold: 10}))
	assert.False(t, requirementMet(rec, &gamebook.Requirement{Gold: 11}))
	assert.True(t, requirementMet(rec, &gamebook.Requirement{ItemClass: "prata"}))
	assert.False(t, requirementMet(rec, &gamebook.Requirement{ItemClass: "ouro"}))
	assert.True(t, requirementMet(rec, &gamebook.Requirement{Knowledge: "mapa_da_montanha"}))
	assert.False(t, requirementMet(rec, &gamebook.Requirement{Knowledge: "senha"}))
	assert.True(t, requirementMet(rec, &gamebook.Requirement{Item: "Espada"}))
	assert.False(t, requirementMet(rec, &gamebook.Requirement{Item: "Lanterna"}))
}

func TestParseCombatToken(t *testing.T) {
	action, round, ok := parseCombatToken("combat_attack_3")
	assert.True(t, ok)
	assert.Equal(t, "attack", action)
	assert.Equal(t, 3, round)

	action, round, ok = parseCombatToken("combat_use_luck_12")
	assert.True(t, ok)
	assert.Equal(t, "use_luck", action)
	assert.Equal(t, 12, round)

	_, _, ok = parseCombatToken("combat_attack")
	assert.False(t, ok)
}
