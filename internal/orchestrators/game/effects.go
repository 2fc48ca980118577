package game

import (
	"fmt"
	"strings"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
)

// Item names with dedicated acquisition rules
const (
	itemGold             = "Ouro"
	itemInvisibilityDose = "Poção de Invisibilidade"
	itemMagicHelmet      = "Elmo Mágico"
	itemCursedBoots      = "Botas Amaldiçoadas"
)

// applyAttributeModifier mutates one attribute pool and returns the
// notices describing the change, in the order they occurred. Gold and
// provisions are plain additive counters; the three core pools follow
// the modifier mode and are clamped to [floor, initial] except in mode
// "both", which shifts the ceiling itself.
func applyAttributeModifier(rec *gamebook.PlayerRecord, mod *gamebook.AttributeModifier) []string {
	if mod == nil {
		return nil
	}

	switch mod.Attribute {
	case gamebook.AttributeGold:
		rec.Gold += mod.Amount
		return []string{fmt.Sprintf("Seu ouro foi ajustado em %d. Ouro atual: %d.", mod.Amount, rec.Gold)}
	case gamebook.AttributeProvisions:
		rec.Provisions += mod.Amount
		return []string{fmt.Sprintf("Suas provisões foram ajustadas em %d. Provisões atuais: %d.", mod.Amount, rec.Provisions)}
	}

	attrs := &rec.Attributes
	name := mod.Attribute.DisplayName()
	initial := attrs.Initial(mod.Attribute)

	var notice string
	switch mod.Mode {
	case gamebook.ModeRestoreFull:
		attrs.SetCurrent(mod.Attribute, initial)
		notice = fmt.Sprintf("Sua %s foi restaurada para o valor inicial: %d.", name, initial)
	case gamebook.ModeRestoreUpTo:
		restored := attrs.Current(mod.Attribute) + mod.Amount
		if restored > initial {
			restored = initial
		}
		attrs.SetCurrent(mod.Attribute, restored)
		notice = fmt.Sprintf("Sua %s foi restaurada. Valor atual: %d.", name, restored)
	case gamebook.ModeBoth:
		attrs.SetInitial(mod.Attribute, initial+mod.Amount)
		attrs.SetCurrent(mod.Attribute, attrs.Current(mod.Attribute)+mod.Amount)
		notice = fmt.Sprintf("Sua %s (inicial e atual) foi modificada em %d. Novo valor: %d.",
			name, mod.Amount, attrs.Current(mod.Attribute))
	default:
		attrs.SetCurrent(mod.Attribute, attrs.Current(mod.Attribute)+mod.Amount)
		notice = fmt.Sprintf("Sua %s foi modificada em %d. Novo valor: %d.",
			name, mod.Amount, attrs.Current(mod.Attribute))
	}

	if mod.Mode != gamebook.ModeBoth {
		clampAttribute(attrs, mod.Attribute)
	}

	return []string{notice}
}

// clampAttribute forces current into [floor, initial]
func clampAttribute(attrs *gamebook.AttributeBlock, a gamebook.Attribute) {
	current := attrs.Current(a)
	if current > attrs.Initial(a) {
		current = attrs.Initial(a)
	}
	if floor := a.Floor(); current < floor {
		current = floor
	}
	attrs.SetCurrent(a, current)
}

// applyItemFound grants one found item and returns the notices. Gold
// items add to the gold counter, jewel-class items go to the jewel
// pouch, everything else lands in the inventory. A mandatory-swap flag
// is acknowledged in the notice but the item is granted regardless.
func applyItemFound(rec *gamebook.PlayerRecord, item *gamebook.ItemFound) []string {
	switch {
	case item.Item == itemGold:
		rec.Gold += item.Quantity
		return []string{fmt.Sprintf("Você encontrou %d Peças de Ouro! Seu total de ouro é: %d.", item.Quantity, rec.Gold)}

	case strings.Contains(item.Item, "Jóia") || strings.Contains(item.Item, "Brincos"):
		rec.Jewels = append(rec.Jewels, gamebook.Jewel{Name: item.Item, Value: item.GoldValue})
		return []string{fmt.Sprintf("Você encontrou: %s!", item.Item)}

	case item.Item == itemInvisibilityDose:
		rec.Inventory = append(rec.Inventory, item.Item)
		return []string{fmt.Sprintf("Você encontrou uma %s! (1 dose)", item.Item)}

	default:
		notices := []string{fmt.Sprintf("Você encontrou %s!", item.Item)}
		if item.MandatorySwap && len(rec.Inventory) >= 1 {
			notices = []string{fmt.Sprintf(
				"Você encontrou %s! Para pegá-lo, você precisa descartar um item do seu inventário. O item foi adicionado; considere um dos seus itens descartado.",
				item.Item)}
		}
		rec.Inventory = append(rec.Inventory, item.Item)
		return notices
	}
}
