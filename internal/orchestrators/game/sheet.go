package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
)

// buildSheet formats the adventure sheet
func buildSheet(rec *gamebook.PlayerRecord) string {
	items := "Nenhum"
	if len(rec.Inventory) > 0 {
		items = strings.Join(rec.Inventory, ", ")
	}

	jewels := "Nenhuma"
	if len(rec.Jewels) > 0 {
		names := make([]string, 0, len(rec.Jewels))
		for _, j := range rec.Jewels {
			names = append(names, j.Name)
		}
		jewels = strings.Join(names, ", ")
	}

	potion := "Nenhuma"
	if rec.Potion != nil {
		potion = fmt.Sprintf("%s (%d doses)", rec.Potion.Name, rec.Potion.Doses)
	}

	var b strings.Builder
	b.WriteString("--- SUA FICHA DE AVENTURA ---\n")
	fmt.Fprintf(&b, "HABILIDADE Inicial: %d\n", rec.Attributes.SkillInitial)
	fmt.Fprintf(&b, "HABILIDADE Atual: %d\n\n", rec.Attributes.SkillCurrent)
	fmt.Fprintf(&b, "ENERGIA Inicial: %d\n", rec.Attributes.StaminaInitial)
	fmt.Fprintf(&b, "ENERGIA Atual: %d\n\n", rec.Attributes.StaminaCurrent)
	fmt.Fprintf(&b, "SORTE Inicial: %d\n", rec.Attributes.LuckInitial)
	fmt.Fprintf(&b, "SORTE Atual: %d\n\n", rec.Attributes.LuckCurrent)
	fmt.Fprintf(&b, "ITENS: %s\n", items)
	fmt.Fprintf(&b, "PROVISÕES RESTANTES: %d\n", rec.Provisions)
	fmt.Fprintf(&b, "OURO: %d\n", rec.Gold)
	fmt.Fprintf(&b, "JÓIAS: %s\n", jewels)
	fmt.Fprintf(&b, "POÇÃO: %s\n", potion)
	b.WriteString("--------------------------------")
	return b.String()
}

// AdventureSheet renders the player's current adventure sheet. A player
// who has not generated attributes yet is told to start a game first.
func (o *orchestrator) AdventureSheet(ctx context.Context, input *AdventureSheetInput) (*AdventureSheetOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !rec.Started() {
		o.send(ctx, rec.PlayerID, "Nenhum jogo em andamento. Digite /start para criar seu personagem.")
		return &AdventureSheetOutput{}, nil
	}

	sheet := buildSheet(rec)
	o.send(ctx, rec.PlayerID, sheet)
	return &AdventureSheetOutput{Sheet: sheet}, nil
}
