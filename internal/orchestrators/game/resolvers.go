package game

import (
	"context"
	"fmt"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/notify"
)

// promptLuckTest renders a luck-test section. A player with no luck
// left fails automatically, without rolling and without spending luck.
func (o *orchestrator) promptLuckTest(ctx context.Context, rec *gamebook.PlayerRecord, spec *gamebook.LuckTestSpec, text string) error {
	o.send(ctx, rec.PlayerID, text)

	if rec.Attributes.LuckCurrent <= 0 {
		o.send(ctx, rec.PlayerID, "Você não tem Sorte para este teste. Falha automática.")
		if spec.Failure.GoTo == "" {
			return nil
		}
		o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, spec.Failure.Effect))
		if err := o.saveRecord(ctx, rec); err != nil {
			return err
		}
		return o.resolveSection(ctx, rec, spec.Failure.GoTo)
	}

	o.sendChoices(ctx, rec, &notify.Message{
		Text: "Deseja testar sua sorte?",
		Choices: []notify.Choice{
			{Text: "Testar sua Sorte (-1 Sorte)", Action: actionTestLuck},
		},
	})
	return o.saveRecord(ctx, rec)
}

// RunLuckTest spends one luck point, rolls 2d6, and succeeds when the
// roll does not exceed the luck the player had before spending it.
func (o *orchestrator) RunLuckTest(ctx context.Context, input *RunTestInput) (*RunTestOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	spec, err := o.currentSectionSpec(rec)
	if err != nil {
		return nil, err
	}
	if spec.LuckTest == nil {
		return nil, errors.InvalidArgumentf("section %s has no luck test", rec.CurrentSection)
	}

	luck := rec.Attributes.LuckCurrent
	if luck <= 0 {
		o.send(ctx, rec.PlayerID, "Você não tem sorte suficiente para fazer este teste.")
		if spec.LuckTest.Failure.GoTo != "" {
			if err := o.resolveSection(ctx, rec, spec.LuckTest.Failure.GoTo); err != nil {
				return nil, err
			}
		}
		return &RunTestOutput{Record: rec}, nil
	}

	rec.Attributes.LuckCurrent--
	roll := o.roller.Roll(2, 6)

	branch := &spec.LuckTest.Failure
	verdict := "Você não teve sorte."
	if roll <= luck {
		branch = &spec.LuckTest.Success
		verdict = "Você teve sorte!"
	}

	o.send(ctx, rec.PlayerID, fmt.Sprintf("Você testa sua sorte (Sorte atual: %d). Rolou %d.\n%s %s",
		rec.Attributes.LuckCurrent, roll, verdict, branch.Text))
	o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, branch.Effect))

	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	if err := o.resolveSection(ctx, rec, branch.GoTo); err != nil {
		return nil, err
	}
	return &RunTestOutput{Record: rec}, nil
}

// RunDiceTest rolls the section's dice and follows the first matching
// condition. The dataset is expected to cover the whole roll domain; a
// roll no condition matches is a dataset defect.
func (o *orchestrator) RunDiceTest(ctx context.Context, input *RunTestInput) (*RunTestOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	spec, err := o.currentSectionSpec(rec)
	if err != nil {
		return nil, err
	}
	if spec.DiceTest == nil {
		return nil, errors.InvalidArgumentf("section %s has no dice test", rec.CurrentSection)
	}

	roll := o.roller.Roll(spec.DiceTest.Dice, 6)

	var matched *gamebook.DiceCondition
	for i := range spec.DiceTest.Conditions {
		if spec.DiceTest.Conditions[i].Matches(roll) {
			matched = &spec.DiceTest.Conditions[i]
			break
		}
	}
	if matched == nil {
		return nil, errors.Internalf("dice test at section %s covers no condition for roll %d", rec.CurrentSection, roll)
	}

	o.send(ctx, rec.PlayerID, fmt.Sprintf("Você rolou %dd6 e obteve %d.\n%s", spec.DiceTest.Dice, roll, matched.Text))
	o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, matched.Effect))

	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	if err := o.resolveSection(ctx, rec, matched.GoTo); err != nil {
		return nil, err
	}
	return &RunTestOutput{Record: rec}, nil
}

// RunAttributeTest rolls the section's dice against the current value
// of the named attribute. The test itself consumes nothing.
func (o *orchestrator) RunAttributeTest(ctx context.Context, input *RunTestInput) (*RunTestOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	spec, err := o.currentSectionSpec(rec)
	if err != nil {
		return nil, err
	}
	if spec.AttributeTest == nil {
		return nil, errors.InvalidArgumentf("section %s has no attribute test", rec.CurrentSection)
	}

	test := spec.AttributeTest
	value := rec.Attributes.Current(test.Attribute)
	roll := o.roller.Roll(test.Dice, 6)

	branch := &test.Failure
	if roll <= value {
		branch = &test.Success
	}

	o.send(ctx, rec.PlayerID, fmt.Sprintf("Você testa sua %s (Valor: %d). Rolou %dd6 e obteve %d.\n%s",
		test.Attribute.DisplayName(), value, test.Dice, roll, branch.Text))
	o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, branch.Effect))

	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	if err := o.resolveSection(ctx, rec, branch.GoTo); err != nil {
		return nil, err
	}
	return &RunTestOutput{Record: rec}, nil
}

// RunRepeatedLuckTest resolves one attempt of a consecutive-successes
// luck challenge. One failure routes to the failure branch and resets
// the counter; reaching the target routes to the success branch.
func (o *orchestrator) RunRepeatedLuckTest(ctx context.Context, input *RunTestInput) (*RunTestOutput, error) {
	rec, err := o.loadRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	spec, err := o.currentSectionSpec(rec)
	if err != nil {
		return nil, err
	}
	if spec.RepeatedLuckTest == nil {
		return nil, errors.InvalidArgumentf("section %s has no repeated luck test", rec.CurrentSection)
	}
	test := spec.RepeatedLuckTest

	luck := rec.Attributes.LuckCurrent
	if luck <= 0 {
		o.send(ctx, rec.PlayerID, "Você não tem sorte suficiente para continuar este teste.")
		if test.Failure.GoTo != "" {
			rec.PendingTestSuccesses = 0
			if err := o.resolveSection(ctx, rec, test.Failure.GoTo); err != nil {
				return nil, err
			}
		}
		return &RunTestOutput{Record: rec}, nil
	}

	rec.Attributes.LuckCurrent--
	roll := o.roller.Roll(2, 6)
	header := fmt.Sprintf("Você testou sua Sorte (Sorte atual: %d). Rolou %d.", rec.Attributes.LuckCurrent, roll)

	if roll > luck {
		o.send(ctx, rec.PlayerID, header+"\nVocê não teve sorte nesta tentativa. "+test.Failure.Text)
		o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, test.Failure.Effect))
		rec.PendingTestSuccesses = 0
		if err := o.saveRecord(ctx, rec); err != nil {
			return nil, err
		}
		if err := o.resolveSection(ctx, rec, test.Failure.GoTo); err != nil {
			return nil, err
		}
		return &RunTestOutput{Record: rec}, nil
	}

	rec.PendingTestSuccesses++
	if rec.PendingTestSuccesses >= test.Attempts {
		o.send(ctx, rec.PlayerID, header+"\nVocê teve sorte nesta tentativa!\n"+test.Success.Text)
		o.sendAll(ctx, rec.PlayerID, applyAttributeModifier(rec, test.Success.Effect))
		rec.PendingTestSuccesses = 0
		if err := o.saveRecord(ctx, rec); err != nil {
			return nil, err
		}
		if err := o.resolveSection(ctx, rec, test.Success.GoTo); err != nil {
			return nil, err
		}
		return &RunTestOutput{Record: rec}, nil
	}

	remaining := test.Attempts - rec.PendingTestSuccesses
	o.send(ctx, rec.PlayerID, fmt.Sprintf("%s\nVocê teve sorte nesta tentativa! Faltam %d sucessos.", header, remaining))
	o.sendChoices(ctx, rec, &notify.Message{
		Text: test.Instructions,
		Choices: []notify.Choice{
			{Text: "Tentar Sorte Novamente (-1 Sorte)", Action: actionTestRepeatedLuck},
		},
	})
	if err := o.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	return &RunTestOutput{Record: rec}, nil
}

// currentSectionSpec loads the definition of the section the record
// points at
func (o *orchestrator) currentSectionSpec(rec *gamebook.PlayerRecord) (*gamebook.SectionDefinition, error) {
	return o.dataset.Section(rec.CurrentSection)
}
