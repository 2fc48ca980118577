package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/notify"
	"github.com/firetop/gamebook-api/internal/repositories/player"
)

// startSectionID is the first section of the adventure proper
const startSectionID = "1"

// Action tokens for the test prompts
const (
	actionTestLuck         = "test_luck"
	actionTestDice         = "test_dice"
	actionTestAttribute    = "test_attribute"
	actionTestRepeatedLuck = "test_repeated_luck"
)

const sectionNotFoundNotice = "Erro: Seção do jogo não encontrada. Por favor, inicie um novo jogo com /start."

func (o *orchestrator) loadRecord(ctx context.Context, playerID string) (*gamebook.PlayerRecord, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	output, err := o.playerRepo.Get(ctx, player.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	return output.Record, nil
}

func (o *orchestrator) saveRecord(ctx context.Context, rec *gamebook.PlayerRecord) error {
	_, err := o.playerRepo.Save(ctx, player.SaveInput{Record: rec})
	return err
}

// send delivers a plain notice. Delivery failures are logged, never
// propagated: a stalled transport must not lose the state mutation that
// already happened.
func (o *orchestrator) send(ctx context.Context, playerID, text string) {
	if text == "" {
		return
	}
	if _, err := o.sink.Render(ctx, playerID, &notify.Message{Text: text}); err != nil {
		slog.ErrorContext(ctx, "failed to deliver notice",
			"player_id", playerID,
			"error", err.Error())
	}
}

// sendAll delivers a batch of notices in order
func (o *orchestrator) sendAll(ctx context.Context, playerID string, notices []string) {
	for _, n := range notices {
		o.send(ctx, playerID, n)
	}
}

// sendChoices delivers a message carrying actionable choices, clearing
// the previous choice message first so stale buttons cannot be
// re-picked. The new message ID is stored on the record but not
// persisted here; callers persist as part of their own flow.
func (o *orchestrator) sendChoices(ctx context.Context, rec *gamebook.PlayerRecord, msg *notify.Message) {
	if rec.LastMessageID != "" {
		if err := o.sink.ClearChoices(ctx, rec.PlayerID, rec.LastMessageID); err != nil {
			slog.DebugContext(ctx, "failed to clear previous choices",
				"player_id", rec.PlayerID,
				"message_id", rec.LastMessageID,
				"error", err.Error())
		}
	}

	id, err := o.sink.Render(ctx, rec.PlayerID, msg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to deliver choices",
			"player_id", rec.PlayerID,
			"error", err.Error())
		return
	}
	rec.LastMessageID = id
}

// resolveSection is the heart of the engine. It renders a section,
// hands control to the governing subsystem when the section has one,
// otherwise applies effects and emits the filtered option set.
func (o *orchestrator) resolveSection(ctx context.Context, rec *gamebook.PlayerRecord, sectionID string) error {
	return o.resolve(ctx, rec, sectionID, false)
}

// resolveSkippingEvent re-renders a section without re-running its
// event. The mini-games return through here so a finished bet or card
// game shows the section's options instead of prompting forever.
func (o *orchestrator) resolveSkippingEvent(ctx context.Context, rec *gamebook.PlayerRecord, sectionID string) error {
	return o.resolve(ctx, rec, sectionID, true)
}

func (o *orchestrator) resolve(ctx context.Context, rec *gamebook.PlayerRecord, sectionID string, skipEvent bool) error {
	section, err := o.dataset.Section(sectionID)
	if err != nil {
		o.send(ctx, rec.PlayerID, sectionNotFoundNotice)
		return err
	}

	rec.CurrentSection = sectionID
	if section.Bookmark != "" {
		rec.Bookmark = section.Bookmark
	}
	if err := o.saveRecord(ctx, rec); err != nil {
		return err
	}

	text := strings.Join(section.Text, "\n")

	if section.EndOfGame != gamebook.EndNone {
		return o.finishGame(ctx, rec, section, text)
	}

	if section.Combat != nil {
		o.send(ctx, rec.PlayerID, text)
		return o.startCombat(ctx, rec, section.Combat)
	}

	if section.LuckTest != nil {
		return o.promptLuckTest(ctx, rec, section.LuckTest, text)
	}

	if section.DiceTest != nil {
		o.send(ctx, rec.PlayerID, text)
		o.sendChoices(ctx, rec, &notify.Message{
			Text: "Hora de rolar os dados!",
			Choices: []notify.Choice{
				{Text: fmt.Sprintf("Rolar %dd6", section.DiceTest.Dice), Action: actionTestDice},
			},
		})
		return o.saveRecord(ctx, rec)
	}

	if section.AttributeTest != nil {
		o.send(ctx, rec.PlayerID, text)
		name := section.AttributeTest.Attribute.DisplayName()
		o.sendChoices(ctx, rec, &notify.Message{
			Text: fmt.Sprintf("Hora de testar sua %s!", name),
			Choices: []notify.Choice{
				{Text: fmt.Sprintf("Testar %s", name), Action: actionTestAttribute},
			},
		})
		return o.saveRecord(ctx, rec)
	}

	if section.RepeatedLuckTest != nil {
		o.send(ctx, rec.PlayerID, text)
		rec.PendingTestSuccesses = 0
		o.sendChoices(ctx, rec, &notify.Message{
			Text: section.RepeatedLuckTest.Instructions,
			Choices: []notify.Choice{
				{Text: "Tentar Sorte (-1 Sorte)", Action: actionTestRepeatedLuck},
			},
		})
		return o.saveRecord(ctx, rec)
	}

	for i := range section.Modifiers {
		o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, &section.Modifiers[i]))
	}
	for i := range section.ItemsFound {
		o.sendAll(ctx, rec.PlayerID, applyItemFound(rec, &section.ItemsFound[i]))
	}
	if len(section.Modifiers) > 0 || len(section.ItemsFound) > 0 {
		if err := o.saveRecord(ctx, rec); err != nil {
			return err
		}
	}

	if section.Event != nil && !skipEvent {
		owned, err := o.handleGameEvent(ctx, rec, section.Event, sectionID)
		if err != nil {
			return err
		}
		if err := o.saveRecord(ctx, rec); err != nil {
			return err
		}
		if owned {
			return nil
		}
	}

	choices := make([]notify.Choice, 0, len(section.Options))
	for _, opt := range section.Options {
		if requirementMet(rec, opt.Requirement) {
			choices = append(choices, notify.Choice{Text: opt.Text, Action: "option_" + opt.GoTo})
		}
	}

	o.sendChoices(ctx, rec, &notify.Message{
		Text:    text,
		Image:   section.Image,
		Choices: choices,
	})
	return o.saveRecord(ctx, rec)
}

// finishGame renders a terminal section and deletes the record
func (o *orchestrator) finishGame(ctx context.Context, rec *gamebook.PlayerRecord, section *gamebook.SectionDefinition, text string) error {
	o.send(ctx, rec.PlayerID, text)
	if section.EndOfGame == gamebook.EndVictory {
		o.send(ctx, rec.PlayerID, "PARABÉNS, AVENTUREIRO! VOCÊ VENCEU!")
	} else {
		o.send(ctx, rec.PlayerID, "FIM DE JOGO! Sua aventura terminou aqui. Digite /start para começar uma nova aventura.")
	}

	if _, err := o.playerRepo.Delete(ctx, player.DeleteInput{PlayerID: rec.PlayerID}); err != nil && !errors.IsNotFound(err) {
		return err
	}
	return nil
}

// requirementMet evaluates an option gate against the current record.
// It is a pure function of the record and the requirement.
func requirementMet(rec *gamebook.PlayerRecord, req *gamebook.Requirement) bool {
	if req == nil {
		return true
	}
	if req.Gold > 0 && rec.Gold < req.Gold {
		return false
	}
	if req.ItemClass != "" {
		found := false
		for _, item := range rec.Inventory {
			if strings.Contains(strings.ToLower(item), strings.ToLower(req.ItemClass)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if req.Knowledge != "" && !rec.HasKnowledge(req.Knowledge) {
		return false
	}
	if req.Item != "" && !rec.HasItem(req.Item) {
		return false
	}
	return true
}

// ChooseOption follows a normal navigation option. Combat state,
// temporary modifiers, and the bookmark do not survive ordinary
// navigation.
func (o *orchestrator) ChooseOption(ctx context.Context, input *ChooseOptionInput) (*ChooseOptionOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if input.SectionID == "" {
		return nil, errors.InvalidArgument("section ID cannot be empty")
	}

	rec.ClearTransient()
	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}

	if err := o.resolveSection(ctx, rec, input.SectionID); err != nil {
		return nil, err
	}
	return &ChooseOptionOutput{Record: rec}, nil
}
