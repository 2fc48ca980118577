package game

import (
	"context"
	"fmt"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/notify"
	"github.com/firetop/gamebook-api/internal/repositories/player"
)

// The adventurer's starting kit
var startingKit = []string{"Espada", "Armadura de Couro", "Lanterna"}

const startingProvisions = 10

// ShowMenu renders the welcome menu
func (o *orchestrator) ShowMenu(ctx context.Context, input *ShowMenuInput) (*ShowMenuOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	texts := o.dataset.Texts()
	if _, err := o.sink.Render(ctx, input.PlayerID, &notify.Message{
		Text: texts.Welcome,
		Choices: []notify.Choice{
			{Text: "Começar a Jornada", Action: "start_journey"},
			{Text: "Boatos", Action: "rumors"},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to render menu")
	}
	return &ShowMenuOutput{}, nil
}

// StartJourney resets the record to fresh defaults and prompts the
// first attribute roll
func (o *orchestrator) StartJourney(ctx context.Context, input *StartJourneyInput) (*StartJourneyOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	rec := gamebook.New(input.PlayerID)
	rec.Inventory = append([]string{}, startingKit...)
	rec.Provisions = startingProvisions
	rec.CurrentSection = gamebook.StageGenerateSkill

	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}

	texts := o.dataset.Texts()
	o.sendChoices(ctx, rec, &notify.Message{
		Text: texts.AttributeGeneration.Skill.Prompt,
		Choices: []notify.Choice{
			{Text: texts.AttributeGeneration.Skill.ButtonText, Action: "roll_skill"},
		},
	})
	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	return &StartJourneyOutput{Record: rec}, nil
}

// RollAttribute resolves one attribute-generation step. Skill is d6+6,
// stamina 2d6+12, luck d6+6; each roll advances the onboarding stage.
func (o *orchestrator) RollAttribute(ctx context.Context, input *RollAttributeInput) (*RollAttributeOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	texts := o.dataset.Texts()

	switch input.Attribute {
	case gamebook.AttributeSkill:
		if rec.CurrentSection != gamebook.StageGenerateSkill {
			o.send(ctx, rec.PlayerID, texts.AttributeGeneration.Skill.InvalidRoll)
			return &RollAttributeOutput{Record: rec}, nil
		}
		roll := o.roller.Roll(1, 6)
		rec.Attributes.SkillInitial = roll + 6
		rec.Attributes.SkillCurrent = rec.Attributes.SkillInitial
		rec.CurrentSection = gamebook.StageGenerateStamina
		o.sendChoices(ctx, rec, &notify.Message{
			Text: fmt.Sprintf("Você rolou %d. Sua HABILIDADE inicial é: %d.\n%s",
				roll, rec.Attributes.SkillInitial, texts.AttributeGeneration.Stamina.Prompt),
			Choices: []notify.Choice{
				{Text: texts.AttributeGeneration.Stamina.ButtonText, Action: "roll_stamina"},
			},
		})
		if err := o.saveRecord(ctx, rec); err != nil {
			return nil, err
		}
		return &RollAttributeOutput{Rolled: roll, Record: rec}, nil

	case gamebook.AttributeStamina:
		if rec.CurrentSection != gamebook.StageGenerateStamina {
			o.send(ctx, rec.PlayerID, texts.AttributeGeneration.Stamina.InvalidRoll)
			return &RollAttributeOutput{Record: rec}, nil
		}
		roll := o.roller.Roll(2, 6)
		rec.Attributes.StaminaInitial = roll + 12
		rec.Attributes.StaminaCurrent = rec.Attributes.StaminaInitial
		rec.CurrentSection = gamebook.StageGenerateLuck
		o.sendChoices(ctx, rec, &notify.Message{
			Text: fmt.Sprintf("Você rolou %d. Sua ENERGIA inicial é: %d.\n%s",
				roll, rec.Attributes.StaminaInitial, texts.AttributeGeneration.Luck.Prompt),
			Choices: []notify.Choice{
				{Text: texts.AttributeGeneration.Luck.ButtonText, Action: "roll_luck"},
			},
		})
		if err := o.saveRecord(ctx, rec); err != nil {
			return nil, err
		}
		return &RollAttributeOutput{Rolled: roll, Record: rec}, nil

	case gamebook.AttributeLuck:
		if rec.CurrentSection != gamebook.StageGenerateLuck {
			o.send(ctx, rec.PlayerID, texts.AttributeGeneration.Luck.InvalidRoll)
			return &RollAttributeOutput{Record: rec}, nil
		}
		roll := o.roller.Roll(1, 6)
		rec.Attributes.LuckInitial = roll + 6
		rec.Attributes.LuckCurrent = rec.Attributes.LuckInitial
		rec.CurrentSection = gamebook.StageChoosePotion

		choices := make([]notify.Choice, 0, len(texts.AttributeGeneration.PotionOptions))
		for _, opt := range texts.AttributeGeneration.PotionOptions {
			choices = append(choices, notify.Choice{Text: opt.Text, Action: "choose_potion_" + opt.Type})
		}
		o.sendChoices(ctx, rec, &notify.Message{
			Text:    texts.AttributeGeneration.PotionChoice,
			Choices: choices,
		})
		if err := o.saveRecord(ctx, rec); err != nil {
			return nil, err
		}
		return &RollAttributeOutput{Rolled: roll, Record: rec}, nil

	default:
		return nil, errors.InvalidArgumentf("attribute %q cannot be rolled", string(input.Attribute))
	}
}

// ChoosePotion picks the starting potion, shows the finished sheet, and
// enters the first section
func (o *orchestrator) ChoosePotion(ctx context.Context, input *ChoosePotionInput) (*ChoosePotionOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	texts := o.dataset.Texts()
	if rec.CurrentSection != gamebook.StageChoosePotion {
		o.send(ctx, rec.PlayerID, texts.AttributeGeneration.InvalidPotion+"\n"+texts.Common.StartNewGame)
		return &ChoosePotionOutput{Record: rec}, nil
	}

	var name string
	switch input.Type {
	case gamebook.PotionSkill:
		name = "Poção da Habilidade"
	case gamebook.PotionStrength:
		name = "Poção da Força"
	case gamebook.PotionFortune:
		name = "Poção da Fortuna"
	default:
		return nil, errors.InvalidArgumentf("unknown potion type %q", string(input.Type))
	}

	rec.Potion = &gamebook.Potion{Name: name, Doses: 2, Type: input.Type}
	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}

	o.send(ctx, rec.PlayerID, fmt.Sprintf("Você escolheu a %s! Sua aventura está prestes a começar.", name))
	o.send(ctx, rec.PlayerID, buildSheet(rec))

	if err := o.resolveSection(ctx, rec, startSectionID); err != nil {
		return nil, err
	}
	return &ChoosePotionOutput{Record: rec}, nil
}

// Reset deletes the player's record
func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	_, err := o.playerRepo.Delete(ctx, player.DeleteInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.IsNotFound(err) {
			o.send(ctx, input.PlayerID, "Não havia um jogo ativo para ser reiniciado. Digite /start para começar uma nova aventura!")
			return &ResetOutput{Deleted: false}, nil
		}
		return nil, err
	}

	o.send(ctx, input.PlayerID, o.dataset.Texts().ResetGameConfirm)
	return &ResetOutput{Deleted: true}, nil
}
