package game

import (
	"context"
	"fmt"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/notify"
)

// startCombat snapshots the monsters into the record, applies passive
// equipment and curse modifiers, and prompts the first round.
func (o *orchestrator) startCombat(ctx context.Context, rec *gamebook.PlayerRecord, spec *gamebook.CombatSpec) error {
	monsters := make([]gamebook.Monster, len(spec.Monsters))
	copy(monsters, spec.Monsters)

	rec.Combat = &gamebook.CombatState{
		Monsters:            monsters,
		Flee:                spec.Flee,
		VictoryGoTo:         spec.VictoryGoTo,
		SpecialInstructions: spec.SpecialInstructions,
		Events:              spec.Events,
	}

	if rec.HasItem(itemMagicHelmet) {
		rec.TemporaryModifiers.AttackRollBonus++
		o.send(ctx, rec.PlayerID, "Seu Elmo Mágico lhe concede +1 na Força de Ataque.")
	}
	for _, cursed := range rec.CursedItems {
		if cursed == itemCursedBoots {
			rec.TemporaryModifiers.AttackRollPenalty -= 2
			o.send(ctx, rec.PlayerID, "Suas Botas Amaldiçoadas impõem uma penalidade de -2 na sua Força de Ataque.")
		}
	}

	if err := o.saveRecord(ctx, rec); err != nil {
		return err
	}

	o.send(ctx, rec.PlayerID, "INÍCIO DO COMBATE!")
	if spec.SpecialInstructions != "" {
		o.send(ctx, rec.PlayerID, "Instruções Especiais: "+spec.SpecialInstructions)
	}
	return o.promptRound(ctx, rec)
}

// promptRound produces the next round prompt. Monster-defeated and
// player-defeated checks happen here, before the round counter
// increments, so a finished combat never yields another prompt.
func (o *orchestrator) promptRound(ctx context.Context, rec *gamebook.PlayerRecord) error {
	combat := rec.Combat
	if combat == nil || len(combat.Monsters) == 0 {
		return nil
	}

	monster := combat.CurrentMonster()
	if monster != nil && monster.Stamina <= 0 {
		o.send(ctx, rec.PlayerID, fmt.Sprintf("%s foi derrotado!", monster.Name))

		for i := range combat.Events {
			ev := &combat.Events[i]
			if ev.Condition != gamebook.CombatEventMonsterDefeated || ev.Target != combat.CurrentMonsterIndex {
				continue
			}
			o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, ev.Effect))
			if ev.GoTo != "" {
				rec.Combat = nil
				if err := o.saveRecord(ctx, rec); err != nil {
					return err
				}
				return o.resolveSection(ctx, rec, ev.GoTo)
			}
		}

		combat.CurrentMonsterIndex++
		if combat.CurrentMonsterIndex >= len(combat.Monsters) {
			victoryGoTo := combat.VictoryGoTo
			rec.Combat = nil
			if err := o.saveRecord(ctx, rec); err != nil {
				return err
			}
			o.send(ctx, rec.PlayerID, "VOCÊ VENCEU O COMBATE!")
			return o.resolveSection(ctx, rec, victoryGoTo)
		}

		next := combat.CurrentMonster()
		o.send(ctx, rec.PlayerID, fmt.Sprintf("Próximo adversário: %s (HAB: %d, EN: %d).",
			next.Name, next.Skill, next.Stamina))
		monster = next
	}

	if rec.Attributes.StaminaCurrent <= 0 {
		rec.Combat = nil
		rec.CurrentSection = ""
		if err := o.saveRecord(ctx, rec); err != nil {
			return err
		}
		o.send(ctx, rec.PlayerID, "Sua ENERGIA chegou a zero. Sua aventura terminou aqui. Digite /start para tentar novamente.")
		return nil
	}

	combat.Round++
	text := fmt.Sprintf("--- RODADA %d ---\nVocê (HAB: %d, EN: %d) vs. %s (HAB: %d, EN: %d)",
		combat.Round,
		rec.Attributes.SkillCurrent, rec.Attributes.StaminaCurrent,
		monster.Name, monster.Skill, monster.Stamina)

	choices := []notify.Choice{
		{Text: fmt.Sprintf("Atacar %s", monster.Name), Action: fmt.Sprintf("combat_attack_%d", combat.Round)},
	}
	if combat.Flee != nil && (combat.Flee.MinRound == 0 || combat.Round >= combat.Flee.MinRound) {
		choices = append(choices, notify.Choice{
			Text:   combat.Flee.Text,
			Action: fmt.Sprintf("combat_flee_%d", combat.Round),
		})
	}
	if rec.Attributes.LuckCurrent > 0 {
		choices = append(choices, notify.Choice{
			Text:   "Tentar a Sorte no Combate (-1 Sorte)",
			Action: fmt.Sprintf("combat_use_luck_%d", combat.Round),
		})
	}

	o.sendChoices(ctx, rec, &notify.Message{Text: text, Choices: choices})
	return o.saveRecord(ctx, rec)
}

// CombatAction applies one combat action. Actions carry the round they
// target; a round that was already actioned is dropped without any
// state change or notice.
func (o *orchestrator) CombatAction(ctx context.Context, input *CombatActionInput) (*CombatActionOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if rec.Combat == nil {
		o.send(ctx, rec.PlayerID, "Não há combate ativo no momento.")
		return &CombatActionOutput{Record: rec}, nil
	}

	if rec.Combat.LastActionRound == input.Round {
		return &CombatActionOutput{Ignored: true, Record: rec}, nil
	}
	rec.Combat.LastActionRound = input.Round
	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}

	switch input.Action {
	case CombatAttack:
		err = o.attack(ctx, rec)
	case CombatFlee:
		err = o.flee(ctx, rec)
	case CombatUseLuck:
		err = o.useLuckInCombat(ctx, rec)
	default:
		return nil, errors.InvalidArgumentf("unknown combat action %q", input.Action)
	}
	if err != nil {
		return nil, err
	}
	return &CombatActionOutput{Record: rec}, nil
}

// attack resolves one round: 2d6 plus skill for each side, higher
// strength wounds for 2, a tie wounds nobody.
func (o *orchestrator) attack(ctx context.Context, rec *gamebook.PlayerRecord) error {
	combat := rec.Combat
	monster := combat.CurrentMonster()
	if monster == nil {
		return nil
	}

	playerRoll := o.roller.Roll(2, 6)
	playerStrength := rec.Attributes.SkillCurrent + playerRoll +
		rec.TemporaryModifiers.AttackRollBonus + rec.TemporaryModifiers.AttackRollPenalty

	monsterRoll := o.roller.Roll(2, 6)
	monsterStrength := monster.Skill + monsterRoll

	outcome := fmt.Sprintf("Seu rolamento de ataque: %d (Força: %d)\nAtaque de %s: %d (Força: %d)\n",
		playerRoll, playerStrength, monster.Name, monsterRoll, monsterStrength)

	playerHit := false
	switch {
	case playerStrength > monsterStrength:
		monster.Stamina -= 2
		playerHit = true
		rec.TemporaryModifiers.LastCombatWounded = true
		outcome += fmt.Sprintf("Você feriu %s! (%s ENERGIA: %d)", monster.Name, monster.Name, monster.Stamina)
	case monsterStrength > playerStrength:
		rec.Attributes.StaminaCurrent -= 2
		outcome += fmt.Sprintf("%s feriu você! (Sua ENERGIA: %d)", monster.Name, rec.Attributes.StaminaCurrent)
	default:
		outcome += "Vocês se esquivaram mutuamente. Ninguém foi ferido."
	}

	if playerHit {
		for i := range combat.Events {
			ev := &combat.Events[i]
			if ev.Condition != gamebook.CombatEventFirstWound || ev.Target != combat.CurrentMonsterIndex {
				continue
			}
			if ev.Text != "" {
				o.send(ctx, rec.PlayerID, ev.Text)
			}
			o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, ev.Effect))
			if ev.GoTo != "" {
				rec.Combat = nil
				if err := o.saveRecord(ctx, rec); err != nil {
					return err
				}
				o.send(ctx, rec.PlayerID, outcome)
				return o.resolveSection(ctx, rec, ev.GoTo)
			}
		}
	}

	if err := o.saveRecord(ctx, rec); err != nil {
		return err
	}
	o.send(ctx, rec.PlayerID, outcome)
	return o.promptRound(ctx, rec)
}

// flee abandons the combat for a fixed 2 stamina. A flee that requires
// a luck test can fail, forcing another round.
func (o *orchestrator) flee(ctx context.Context, rec *gamebook.PlayerRecord) error {
	combat := rec.Combat
	if combat.Flee == nil {
		return errors.InvalidArgument("this combat has no flee option")
	}

	if combat.Flee.RequiresLuckTest {
		rec.Attributes.LuckCurrent--
		roll := o.roller.Roll(2, 6)
		if roll > rec.Attributes.LuckCurrent {
			o.send(ctx, rec.PlayerID, fmt.Sprintf(
				"Você tentou fugir, mas falhou no Teste de Sorte (Rolou %d vs Sorte %d). Você não consegue escapar e deve continuar lutando.",
				roll, rec.Attributes.LuckCurrent))
			if err := o.saveRecord(ctx, rec); err != nil {
				return err
			}
			return o.promptRound(ctx, rec)
		}
		o.send(ctx, rec.PlayerID, "Você teve sorte e conseguiu fugir!")
	}

	o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, &gamebook.AttributeModifier{
		Attribute: gamebook.AttributeStamina,
		Amount:    -2,
	}))

	goTo := combat.Flee.GoTo
	if combat.Flee.Effect != nil {
		if _, err := o.handleGameEvent(ctx, rec, combat.Flee.Effect, rec.CurrentSection); err != nil {
			return err
		}
	}

	rec.Combat = nil
	if err := o.saveRecord(ctx, rec); err != nil {
		return err
	}
	o.send(ctx, rec.PlayerID, fmt.Sprintf("Você fugiu do combate, mas perdeu 2 de ENERGIA. Sua ENERGIA atual: %d.",
		rec.Attributes.StaminaCurrent))
	return o.resolveSection(ctx, rec, goTo)
}

// useLuckInCombat spends a luck point for a flavor roll. It does not
// change the round outcome.
func (o *orchestrator) useLuckInCombat(ctx context.Context, rec *gamebook.PlayerRecord) error {
	if rec.Attributes.LuckCurrent <= 0 {
		o.send(ctx, rec.PlayerID, "Você não pode usar a sorte neste momento ou não tem sorte suficiente.")
		return nil
	}

	rec.Attributes.LuckCurrent--
	roll := o.roller.Roll(2, 6)
	msg := fmt.Sprintf("Você testou sua Sorte (Sorte atual: %d). Rolou %d.\n", rec.Attributes.LuckCurrent, roll)
	if roll <= rec.Attributes.LuckCurrent {
		msg += "Você teve sorte! Você sente que sua sorte influenciará o próximo movimento."
	} else {
		msg += "Você não teve sorte. Sua sorte não o ajudou desta vez."
	}

	if err := o.saveRecord(ctx, rec); err != nil {
		return err
	}
	o.send(ctx, rec.PlayerID, msg)
	return o.promptRound(ctx, rec)
}
