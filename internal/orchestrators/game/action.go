package game

import (
	"context"
	"strconv"
	"strings"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/notify"
)

// Standalone action tokens
const (
	actionStartJourney = "start_journey"
	actionRumors       = "rumors"
	actionMainMenu     = "main_menu"
	actionSheet        = "sheet"
	actionReset        = "reset"
	actionHelp         = "help"
	actionInstructions = "instructions"
)

// actionsWithoutRecord are usable before a journey exists
var actionsWithoutRecord = map[string]bool{
	actionStartJourney: true,
	actionRumors:       true,
	actionMainMenu:     true,
	actionHelp:         true,
	actionInstructions: true,
	actionReset:        true,
}

// HandleAction maps an opaque choice token back to the operation it
// stands for. The token grammar mirrors the actions attached to
// rendered choices; anything else is an invalid choice.
func (o *orchestrator) HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	action := input.Action
	texts := o.dataset.Texts()

	if !actionsWithoutRecord[action] {
		if _, err := o.loadRecord(ctx, input.PlayerID); err != nil {
			if errors.IsNotFound(err) {
				o.send(ctx, input.PlayerID, texts.Common.StartNewGame)
				return &HandleActionOutput{}, nil
			}
			return nil, err
		}
	}

	switch {
	case action == actionStartJourney:
		_, err := o.StartJourney(ctx, &StartJourneyInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case action == actionRumors:
		_, err := o.sink.Render(ctx, input.PlayerID, &notify.Message{
			Text: texts.Rumors,
			Choices: []notify.Choice{
				{Text: "Voltar", Action: actionMainMenu},
				{Text: "Começar Jornada", Action: actionStartJourney},
			},
		})
		return &HandleActionOutput{}, err

	case action == actionMainMenu:
		_, err := o.ShowMenu(ctx, &ShowMenuInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case action == actionHelp:
		o.send(ctx, input.PlayerID, texts.Help)
		return &HandleActionOutput{}, nil

	case action == actionInstructions:
		o.send(ctx, input.PlayerID, texts.Instructions)
		return &HandleActionOutput{}, nil

	case action == actionSheet:
		_, err := o.AdventureSheet(ctx, &AdventureSheetInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case action == actionReset:
		_, err := o.Reset(ctx, &ResetInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case action == "roll_skill":
		_, err := o.RollAttribute(ctx, &RollAttributeInput{PlayerID: input.PlayerID, Attribute: gamebook.AttributeSkill})
		return &HandleActionOutput{}, err

	case action == "roll_stamina":
		_, err := o.RollAttribute(ctx, &RollAttributeInput{PlayerID: input.PlayerID, Attribute: gamebook.AttributeStamina})
		return &HandleActionOutput{}, err

	case action == "roll_luck":
		_, err := o.RollAttribute(ctx, &RollAttributeInput{PlayerID: input.PlayerID, Attribute: gamebook.AttributeLuck})
		return &HandleActionOutput{}, err

	case strings.HasPrefix(action, "choose_potion_"):
		potionType := gamebook.PotionType(strings.TrimPrefix(action, "choose_potion_"))
		_, err := o.ChoosePotion(ctx, &ChoosePotionInput{PlayerID: input.PlayerID, Type: potionType})
		return &HandleActionOutput{}, err

	case strings.HasPrefix(action, "option_"):
		sectionID := strings.TrimPrefix(action, "option_")
		_, err := o.ChooseOption(ctx, &ChooseOptionInput{PlayerID: input.PlayerID, SectionID: sectionID})
		return &HandleActionOutput{}, err

	case strings.HasPrefix(action, "combat_"):
		combatAction, round, ok := parseCombatToken(action)
		if !ok {
			break
		}
		_, err := o.CombatAction(ctx, &CombatActionInput{
			PlayerID: input.PlayerID,
			Action:   combatAction,
			Round:    round,
		})
		return &HandleActionOutput{}, err

	case action == actionTestLuck:
		_, err := o.RunLuckTest(ctx, &RunTestInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case action == actionTestDice:
		_, err := o.RunDiceTest(ctx, &RunTestInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case action == actionTestAttribute:
		_, err := o.RunAttributeTest(ctx, &RunTestInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case action == actionTestRepeatedLuck:
		_, err := o.RunRepeatedLuckTest(ctx, &RunTestInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case strings.HasPrefix(action, "bet_gold_"):
		arg := strings.TrimPrefix(action, "bet_gold_")
		betInput := &PlaceBetInput{PlayerID: input.PlayerID}
		if arg == "all" {
			betInput.All = true
		} else {
			amount, err := strconv.Atoi(arg)
			if err != nil {
				break
			}
			betInput.Amount = amount
		}
		_, err := o.PlaceBet(ctx, betInput)
		return &HandleActionOutput{}, err

	case action == "card_game_honest":
		_, err := o.PlayCardGame(ctx, &PlayCardGameInput{PlayerID: input.PlayerID})
		return &HandleActionOutput{}, err

	case action == "card_game_cheat":
		_, err := o.PlayCardGame(ctx, &PlayCardGameInput{PlayerID: input.PlayerID, Cheat: true})
		return &HandleActionOutput{}, err
	}

	o.send(ctx, input.PlayerID, texts.Common.InvalidChoice)
	return &HandleActionOutput{}, nil
}

// parseCombatToken splits "combat_<action>_<round>", where the action
// itself may contain underscores ("use_luck")
func parseCombatToken(token string) (action string, round int, ok bool) {
	rest := strings.TrimPrefix(token, "combat_")
	idx := strings.LastIndex(rest, "_")
	if idx <= 0 {
		return "", 0, false
	}
	round, err := strconv.Atoi(rest[idx+1:])
	if err != nil {
		return "", 0, false
	}
	return rest[:idx], round, true
}
