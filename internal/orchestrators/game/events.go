package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/notify"
)

const keyItemPrefix = "Chave "

// handleGameEvent applies a section event. The returned flag reports
// whether the event took over navigation; callers must stop their own
// continuation when it is set.
func (o *orchestrator) handleGameEvent(ctx context.Context, rec *gamebook.PlayerRecord, ev *gamebook.EventSpec, sectionID string) (bool, error) {
	switch ev.Kind {
	case gamebook.EventRest:
		if rec.Provisions > 0 {
			o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, &gamebook.AttributeModifier{
				Attribute: gamebook.AttributeStamina, Amount: 4, Mode: gamebook.ModeRestoreUpTo,
			}))
			rec.Provisions--
			o.send(ctx, rec.PlayerID, fmt.Sprintf("Você comeu uma provisão e recuperou 4 de ENERGIA. Provisões restantes: %d.", rec.Provisions))
		} else {
			o.send(ctx, rec.PlayerID, "Você não tem provisões para comer.")
		}
		return false, nil

	case gamebook.EventEnchantedRest:
		o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, &gamebook.AttributeModifier{
			Attribute: gamebook.AttributeStamina, Amount: 2, Mode: gamebook.ModeRestoreUpTo,
		}))
		o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, &gamebook.AttributeModifier{
			Attribute: gamebook.AttributeSkill, Amount: 1, Mode: gamebook.ModeRestoreUpTo,
		}))
		o.send(ctx, rec.PlayerID, "Você desfrutou de um descanso encantado e recuperou ENERGIA e HABILIDADE!")
		return false, nil

	case gamebook.EventSharedRest:
		if rec.Provisions > 0 {
			o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, &gamebook.AttributeModifier{
				Attribute: gamebook.AttributeStamina, Amount: 2, Mode: gamebook.ModeRestoreUpTo,
			}))
			rec.Provisions--
			o.send(ctx, rec.PlayerID, fmt.Sprintf("Você compartilhou uma provisão e recuperou 2 de ENERGIA. Provisões restantes: %d.", rec.Provisions))
		} else {
			o.send(ctx, rec.PlayerID, "Você não tem provisões para compartilhar.")
		}
		return false, nil

	case gamebook.EventItemLost:
		if rec.RemoveItem(ev.Item) {
			o.send(ctx, rec.PlayerID, fmt.Sprintf("Você perdeu seu(sua) %s.", ev.Item))
		}
		return false, nil

	case gamebook.EventDiscardItemOrGold:
		o.send(ctx, rec.PlayerID, "Você descartou um item ou uma Peça de Ouro para distraí-lo.")
		return false, nil

	case gamebook.EventKnowledgeGained:
		rec.GainKnowledge(ev.Knowledge)
		o.send(ctx, rec.PlayerID, fmt.Sprintf("Você adquiriu o conhecimento sobre: %s!", ev.Knowledge))
		return false, nil

	case gamebook.EventItemCursed:
		rec.CursedItems = append(rec.CursedItems, ev.Item)
		o.send(ctx, rec.PlayerID, fmt.Sprintf("Você adquiriu um item amaldiçoado: %s!", ev.Item))
		return false, nil

	case gamebook.EventKeyPuzzle:
		return true, o.handleKeyPuzzle(ctx, rec, ev)

	case gamebook.EventWanderingMonster:
		return true, o.handleWanderingMonster(ctx, rec, ev)

	case gamebook.EventDiceBet:
		return true, o.promptBet(ctx, rec, ev, sectionID)

	case gamebook.EventLuckCardGame:
		return true, o.promptCardGame(ctx, rec, sectionID)

	case gamebook.EventPiranhaCombat:
		return true, o.handlePiranhaCombat(ctx, rec, ev)

	default:
		slog.WarnContext(ctx, "unhandled game event",
			"kind", string(ev.Kind),
			"section_id", sectionID)
		return false, nil
	}
}

// handleKeyPuzzle sums the numbers of the carried keys and opens the
// section whose id equals the sum. A sum that names no section springs
// the trap.
func (o *orchestrator) handleKeyPuzzle(ctx context.Context, rec *gamebook.PlayerRecord, ev *gamebook.EventSpec) error {
	var keyNumbers []int
	for _, item := range rec.Inventory {
		if !strings.HasPrefix(item, keyItemPrefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(item, keyItemPrefix)); err == nil {
			keyNumbers = append(keyNumbers, n)
		}
	}

	if len(keyNumbers) < ev.KeysRequired {
		o.send(ctx, rec.PlayerID, fmt.Sprintf(
			"Você precisa de %d chaves para tentar abrir a arca, mas tem apenas %d. Você deve explorar mais!",
			ev.KeysRequired, len(keyNumbers)))
		return o.saveRecord(ctx, rec)
	}

	selected := keyNumbers[:ev.KeysRequired]
	sum := 0
	var labels []string
	for _, n := range selected {
		sum += n
		labels = append(labels, strconv.Itoa(n))
	}
	o.send(ctx, rec.PlayerID, fmt.Sprintf("Você tentou as chaves: %s (Soma: %d).", strings.Join(labels, ", "), sum))

	target := strconv.Itoa(sum)
	if !o.dataset.HasSection(target) {
		o.send(ctx, rec.PlayerID, "As chaves não parecem funcionar... algo inesperado acontece!")
		target = ev.FallbackTrap
	}
	return o.resolveSection(ctx, rec, target)
}

// handleWanderingMonster rolls a d6 against the monster table. An
// encounter fights back to the bookmarked section; a blank roll walks
// there directly.
func (o *orchestrator) handleWanderingMonster(ctx context.Context, rec *gamebook.PlayerRecord, ev *gamebook.EventSpec) error {
	returnTo := rec.Bookmark
	if returnTo == "" {
		returnTo = ev.FallbackSection
	}

	roll := o.roller.Roll(1, 6)
	monster, ok := ev.Table[strconv.Itoa(roll)]
	if !ok {
		o.send(ctx, rec.PlayerID, "Nenhum monstro apareceu. Você segue em frente.")
		return o.resolveSection(ctx, rec, returnTo)
	}

	o.send(ctx, rec.PlayerID, fmt.Sprintf("Um %s apareceu! Prepare-se para lutar.", strings.ToUpper(monster.Name)))
	// Wandering monsters never carry treasure; the fight just resumes
	// the interrupted path.
	return o.startCombat(ctx, rec, &gamebook.CombatSpec{
		Monsters:    []gamebook.Monster{monster},
		VictoryGoTo: returnTo,
	})
}

// promptBet parks the record in the awaiting-bet state and offers the
// wager choices. The host section id is stashed in the bookmark so the
// resolved bet can come back to it.
func (o *orchestrator) promptBet(ctx context.Context, rec *gamebook.PlayerRecord, ev *gamebook.EventSpec, sectionID string) error {
	rec.Bookmark = sectionID
	rec.CurrentSection = gamebook.StageAwaitingBet

	o.sendChoices(ctx, rec, &notify.Message{
		Text: fmt.Sprintf("O velho propõe um jogo de dados. Quanto você aposta (min %d, max %d)? Seu ouro atual: %d.",
			ev.MinBet, ev.MaxBet, rec.Gold),
		Choices: []notify.Choice{
			{Text: "Apostar 5 Ouro", Action: "bet_gold_5"},
			{Text: "Apostar 10 Ouro", Action: "bet_gold_10"},
			{Text: "Apostar Tudo", Action: "bet_gold_all"},
		},
	})
	return o.saveRecord(ctx, rec)
}

// PlaceBet resolves one wager of the betting dice game: both sides
// roll 2d6, higher roll takes the stake.
func (o *orchestrator) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if rec.CurrentSection != gamebook.StageAwaitingBet {
		return nil, errors.InvalidArgument("no bet is awaiting a wager")
	}

	hostID := rec.Bookmark
	host, err := o.dataset.Section(hostID)
	if err != nil {
		return nil, err
	}
	if host.Event == nil || host.Event.Kind != gamebook.EventDiceBet {
		return nil, errors.Internalf("section %s is not a betting game", hostID)
	}

	amount := input.Amount
	if input.All {
		amount = rec.Gold
	}

	if amount <= 0 || rec.Gold < amount {
		o.send(ctx, rec.PlayerID, fmt.Sprintf("Você não tem %d ouro para apostar. Seu ouro atual: %d.", amount, rec.Gold))
		return &PlaceBetOutput{Record: rec}, o.promptBet(ctx, rec, host.Event, hostID)
	}

	playerRoll := o.roller.Roll(2, 6)
	hostRoll := o.roller.Roll(2, 6)
	result := fmt.Sprintf("Você apostou %d ouro. Sua rolagem: %d. Rolagem do velho: %d.\n", amount, playerRoll, hostRoll)

	won := playerRoll > hostRoll
	if won {
		rec.Gold += amount
		result += fmt.Sprintf("Você ganhou %d ouro! Seu ouro atual: %d.", amount, rec.Gold)
		o.send(ctx, rec.PlayerID, result)
		for i := range host.Event.VictoryReward {
			o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, &host.Event.VictoryReward[i]))
		}
	} else {
		rec.Gold -= amount
		result += fmt.Sprintf("Você perdeu %d ouro. Seu ouro atual: %d.", amount, rec.Gold)
		o.send(ctx, rec.PlayerID, result)
	}

	rec.Bookmark = ""
	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	if err := o.resolveSkippingEvent(ctx, rec, hostID); err != nil {
		return nil, err
	}
	return &PlaceBetOutput{Won: won, Record: rec}, nil
}

// promptCardGame parks the record in the awaiting-card state
func (o *orchestrator) promptCardGame(ctx context.Context, rec *gamebook.PlayerRecord, sectionID string) error {
	rec.Bookmark = sectionID
	rec.CurrentSection = gamebook.StageAwaitingCard

	o.sendChoices(ctx, rec, &notify.Message{
		Text: "Você pode jogar cartas honestamente ou tentar trapacear. Qual a sua escolha?",
		Choices: []notify.Choice{
			{Text: "Jogar Honestamente (2d6 Par/Ímpar)", Action: "card_game_honest"},
			{Text: "Tentar Trapacear (Teste de Sorte)", Action: "card_game_cheat"},
		},
	})
	return o.saveRecord(ctx, rec)
}

// PlayCardGame resolves the card game. Honest play wins on an odd 2d6
// roll; cheating is a luck test that spends a luck point.
func (o *orchestrator) PlayCardGame(ctx context.Context, input *PlayCardGameInput) (*PlayCardGameOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if rec.CurrentSection != gamebook.StageAwaitingCard {
		return nil, errors.InvalidArgument("no card game is awaiting a choice")
	}

	hostID := rec.Bookmark
	host, err := o.dataset.Section(hostID)
	if err != nil {
		return nil, err
	}
	if host.Event == nil || host.Event.Kind != gamebook.EventLuckCardGame {
		return nil, errors.Internalf("section %s is not a card game", hostID)
	}

	var msg string
	var won bool
	if input.Cheat {
		if rec.Attributes.LuckCurrent <= 0 {
			o.send(ctx, rec.PlayerID, "Você não tem sorte para trapacear.")
			return &PlayCardGameOutput{Record: rec}, o.promptCardGame(ctx, rec, hostID)
		}
		rec.Attributes.LuckCurrent--
		roll := o.roller.Roll(2, 6)
		msg = fmt.Sprintf("Você tentou trapacear. Teste de Sorte (Sorte atual: %d). Rolou %d.\n",
			rec.Attributes.LuckCurrent, roll)
		won = roll <= rec.Attributes.LuckCurrent
	} else {
		roll := o.roller.Roll(2, 6)
		msg = fmt.Sprintf("Você jogou honestamente. Rolou %d (Par ou Ímpar).\n", roll)
		won = roll%2 != 0
	}

	goTo := host.Event.FailureGoTo
	if won {
		msg += "Você venceu no jogo de cartas! Eles são amigáveis."
		goTo = host.Event.SuccessGoTo
	} else {
		msg += "Você perdeu no jogo de cartas! Eles percebem a trapaça ou você simplesmente perdeu. Prepare-se!"
	}

	rec.Bookmark = ""
	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	o.send(ctx, rec.PlayerID, msg)
	if err := o.resolveSection(ctx, rec, goTo); err != nil {
		return nil, err
	}
	return &PlayCardGameOutput{Won: won, Record: rec}, nil
}

// handlePiranhaCombat resolves the conditional piranha attack. Blood in
// the water from the previous fight draws them away; otherwise a d6
// decides whether they pick the player.
func (o *orchestrator) handlePiranhaCombat(ctx context.Context, rec *gamebook.PlayerRecord, ev *gamebook.EventSpec) error {
	o.send(ctx, rec.PlayerID, "A 'turbulência' são Piranhas! Elas atacam.")

	if rec.TemporaryModifiers.LastCombatWounded {
		rec.TemporaryModifiers.LastCombatWounded = false
		o.send(ctx, rec.PlayerID, "Sua sorte: as piranhas atacam a criatura ferida!")
		for i := range ev.WoundedReward {
			o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, &ev.WoundedReward[i]))
		}
		return o.resolveSection(ctx, rec, ev.WoundedGoTo)
	}

	roll := o.roller.Roll(1, 6)
	if roll <= 2 {
		o.send(ctx, rec.PlayerID, "As piranhas focam em você!")
		return o.startCombat(ctx, rec, &gamebook.CombatSpec{
			Monsters:    []gamebook.Monster{*ev.Monster},
			VictoryGoTo: ev.CombatGoTo,
		})
	}

	o.send(ctx, rec.PlayerID, "As piranhas atacam outro alvo próximo. Você escapa!")
	return o.resolveSection(ctx, rec, ev.SafeGoTo)
}
