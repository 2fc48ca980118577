package game_test

import (
	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/orchestrators/game"
	"github.com/firetop/gamebook-api/internal/testutils"
)

// seedCombat saves a record already fighting the given monsters, with
// one round prompted and awaiting the player's action.
func (s *GameOrchestratorTestSuite) seedCombat(combat *gamebook.CombatState) *gamebook.PlayerRecord {
	rec := testutils.CreateTestPlayerRecord(testutils.TestPlayerID)
	if combat.Round == 0 {
		combat.Round = 1
	}
	rec.Combat = combat
	s.seed(rec)
	return rec
}

func (s *GameOrchestratorTestSuite) attackRound(round int) *game.CombatActionOutput {
	output, err := s.svc.CombatAction(s.ctx, &game.CombatActionInput{
		PlayerID: testutils.TestPlayerID,
		Action:   game.CombatAttack,
		Round:    round,
	})
	s.Require().NoError(err)
	return output
}

func (s *GameOrchestratorTestSuite) TestCombatStartsFromSection() {
	rec := testutils.CreateTestPlayerRecord(testutils.TestPlayerID)
	s.seed(rec)

	_, err := s.svc.ChooseOption(s.ctx, &game.ChooseOptionInput{
		PlayerID:  testutils.TestPlayerID,
		SectionID: "2",
	})
	s.Require().NoError(err)

	stored := s.reload(testutils.TestPlayerID)
	s.Require().NotNil(stored.Combat)
	s.Equal("GOBLIN", stored.Combat.CurrentMonster().Name)
	s.Equal(1, stored.Combat.Round)

	choices := s.lastMessage().Choices
	s.Require().Len(choices, 2, "flee is locked until round 2")
	s.Equal("combat_attack_1", choices[0].Action)
	s.Equal("combat_use_luck_1", choices[1].Action)
}

func (s *GameOrchestratorTestSuite) TestCombatSnapshotLeavesDatasetIntact() {
	rec := testutils.CreateTestPlayerRecord(testutils.TestPlayerID)
	s.seed(rec)

	_, err := s.svc.ChooseOption(s.ctx, &game.ChooseOptionInput{PlayerID: testutils.TestPlayerID, SectionID: "2"})
	s.Require().NoError(err)

	s.roller.Push(10, 2) // player wounds the goblin
	s.attackRound(1)

	section, err := s.buildDataset().Section("2")
	s.Require().NoError(err)
	s.Equal(4, section.Combat.Monsters[0].Stamina, "runtime damage never reaches the dataset")
	s.Equal(2, s.reload(testutils.TestPlayerID).Combat.CurrentMonster().Stamina)
}

func (s *GameOrchestratorTestSuite) TestCombatPlayerWounds() {
	s.seedCombat(&gamebook.CombatState{
		Monsters:    []gamebook.Monster{{Name: "ORC", Skill: 5, Stamina: 6}},
		VictoryGoTo: "3",
	})

	s.roller.Push(9, 4) // strength 18 against 9

	output := s.attackRound(1)
	s.Equal(4, output.Record.Combat.CurrentMonster().Stamina)
	s.Equal(18, output.Record.Attributes.StaminaCurrent)
	s.True(output.Record.TemporaryModifiers.LastCombatWounded)
	s.Equal(2, output.Record.Combat.Round, "the next round was prompted")
}

func (s *GameOrchestratorTestSuite) TestCombatMonsterWounds() {
	s.seedCombat(&gamebook.CombatState{
		Monsters:    []gamebook.Monster{{Name: "ORC", Skill: 12, Stamina: 6}},
		VictoryGoTo: "3",
	})

	s.roller.Push(2, 9) // strength 11 against 21

	output := s.attackRound(1)
	s.Equal(6, output.Record.Combat.CurrentMonster().Stamina)
	s.Equal(16, output.Record.Attributes.StaminaCurrent)
	s.False(output.Record.TemporaryModifiers.LastCombatWounded)
}

func (s *GameOrchestratorTestSuite) TestCombatTieWoundsNobody() {
	s.seedCombat(&gamebook.CombatState{
		Monsters:    []gamebook.Monster{{Name: "ORC", Skill: 9, Stamina: 6}},
		VictoryGoTo: "3",
	})

	s.roller.Push(7, 7) // both at strength 16

	output := s.attackRound(1)
	s.Equal(6, output.Record.Combat.CurrentMonster().Stamina)
	s.Equal(18, output.Record.Attributes.StaminaCurrent)
}

func (s *GameOrchestratorTestSuite) TestCombatReplayGuard() {
	s.seedCombat(&gamebook.CombatState{
		Monsters:    []gamebook.Monster{{Name: "ORC", Skill: 5, Stamina: 8}},
		VictoryGoTo: "3",
	})

	s.roller.Push(9, 4)
	first := s.attackRound(1)
	s.False(first.Ignored)
	s.Equal(6, first.Record.Combat.CurrentMonster().Stamina)

	// The same button pressed again targets round 1, which was already
	// resolved. Nothing rolls and nothing changes.
	second := s.attackRound(1)
	s.True(second.Ignored)
	s.Equal(6, s.reload(testutils.TestPlayerID).Combat.CurrentMonster().Stamina)
}

func (s *GameOrchestratorTestSuite) TestCombatVictoryNavigates() {
	s.seedCombat(&gamebook.CombatState{
		Monsters:    []gamebook.Monster{{Name: "ORC", Skill: 5, Stamina: 2}},
		VictoryGoTo: "3",
	})

	s.roller.Push(9, 4)
	s.attackRound(1)

	stored := s.reload(testutils.TestPlayerID)
	s.Nil(stored.Combat)
	s.Equal("3", stored.CurrentSection)
}

func (s *GameOrchestratorTestSuite) TestCombatMultipleMonsters() {
	s.seedCombat(&gamebook.CombatState{
		Monsters: []gamebook.Monster{
			{Name: "PRIMEIRO GUARDA", Skill: 5, Stamina: 2},
			{Name: "SEGUNDO GUARDA", Skill: 6, Stamina: 6},
		},
		VictoryGoTo: "3",
	})

	s.roller.Push(9, 4)
	output := s.attackRound(1)

	combat := output.Record.Combat
	s.Require().NotNil(combat, "the second guard steps in")
	s.Equal(1, combat.CurrentMonsterIndex)
	s.Equal("SEGUNDO GUARDA", combat.CurrentMonster().Name)
}

func (s *GameOrchestratorTestSuite) TestCombatPlayerDefeat() {
	rec := testutils.CreateTestPlayerRecord(testutils.TestPlayerID)
	rec.Attributes.StaminaCurrent = 2
	rec.Combat = &gamebook.CombatState{
		Monsters:    []gamebook.Monster{{Name: "OGRO", Skill: 12, Stamina: 10}},
		Round:       1,
		VictoryGoTo: "3",
	}
	s.seed(rec)

	s.roller.Push(2, 9) // the ogre lands the killing wound

	output := s.attackRound(1)
	s.Nil(output.Record.Combat)
	s.Equal(0, output.Record.Attributes.StaminaCurrent)
	s.Empty(output.Record.CurrentSection, "a dead adventurer has nowhere to stand")
}

func (s *GameOrchestratorTestSuite) TestCombatFirstWoundOverride() {
	s.seedCombat(&gamebook.CombatState{
		Monsters:    []gamebook.Monster{{Name: "FANTASMA", Skill: 5, Stamina: 10}},
		VictoryGoTo: "3",
		Events: []gamebook.CombatEvent{{
			Condition: gamebook.CombatEventFirstWound,
			Target:    0,
			Text:      "Sua lâmina o atravessa e ele se desfaz em névoa!",
			GoTo:      "3",
		}},
	})

	s.roller.Push(9, 4)

	output := s.attackRound(1)
	s.Nil(output.Record.Combat, "one wound ends this fight")
	s.Equal("3", output.Record.CurrentSection)
}

func (s *GameOrchestratorTestSuite) TestCombatMonsterDefeatedOverride() {
	s.seedCombat(&gamebook.CombatState{
		Monsters: []gamebook.Monster{
			{Name: "CAPITÃO", Skill: 5, Stamina: 2},
			{Name: "RECRUTA", Skill: 4, Stamina: 4},
		},
		VictoryGoTo: "3",
		Events: []gamebook.CombatEvent{{
			Condition: gamebook.CombatEventMonsterDefeated,
			Target:    0,
			Effect:    &gamebook.AttributeModifier{Attribute: gamebook.AttributeGold, Amount: 8},
			GoTo:      "1",
		}},
	})

	s.roller.Push(9, 4) // the captain falls

	output := s.attackRound(1)
	s.Nil(output.Record.Combat, "the recruit flees when the captain falls")
	s.Equal("1", output.Record.CurrentSection)
	s.Equal(8, output.Record.Gold)
}

func (s *GameOrchestratorTestSuite) TestFleeLockedBeforeMinRound() {
	s.seedCombat(&gamebook.CombatState{
		Monsters: []gamebook.Monster{{Name: "ORC", Skill: 5, Stamina: 8}},
		Flee: &gamebook.FleeOption{
			Text:     "Fugir pela ponte",
			MinRound: 3,
			GoTo:     "3",
		},
		VictoryGoTo: "3",
	})

	s.roller.Push(7, 7) // a tie keeps the fight going

	s.attackRound(1)

	choices := s.lastMessage().Choices
	for _, c := range choices {
		s.NotEqual("combat_flee_2", c.Action, "round 2 is still before the flee window")
	}
}

func (s *GameOrchestratorTestSuite) TestFleeCostsStamina() {
	s.seedCombat(&gamebook.CombatState{
		Monsters: []gamebook.Monster{{Name: "ORC", Skill: 5, Stamina: 8}},
		Flee: &gamebook.FleeOption{
			Text: "Fugir",
			GoTo: "3",
		},
		VictoryGoTo: "1",
	})

	output, err := s.svc.CombatAction(s.ctx, &game.CombatActionInput{
		PlayerID: testutils.TestPlayerID,
		Action:   game.CombatFlee,
		Round:    1,
	})
	s.Require().NoError(err)

	s.Nil(output.Record.Combat)
	s.Equal(16, output.Record.Attributes.StaminaCurrent, "fleeing always costs 2")
	s.Equal("3", output.Record.CurrentSection)
}

func (s *GameOrchestratorTestSuite) TestFleeLuckFailureForcesAnotherRound() {
	rec := testutils.CreateTestPlayerRecord(testutils.TestPlayerID)
	rec.Attributes.LuckCurrent = 4
	rec.Combat = &gamebook.CombatState{
		Monsters: []gamebook.Monster{{Name: "ORC", Skill: 5, Stamina: 8}},
		Round:    1,
		Flee: &gamebook.FleeOption{
			Text:             "Fugir",
			RequiresLuckTest: true,
			GoTo:             "3",
		},
		VictoryGoTo: "1",
	}
	s.seed(rec)

	s.roller.Push(11) // rolled over the remaining luck

	output, err := s.svc.CombatAction(s.ctx, &game.CombatActionInput{
		PlayerID: testutils.TestPlayerID,
		Action:   game.CombatFlee,
		Round:    1,
	})
	s.Require().NoError(err)

	s.Require().NotNil(output.Record.Combat, "a failed escape keeps the fight alive")
	s.Equal(2, output.Record.Combat.Round)
	s.Equal(3, output.Record.Attributes.LuckCurrent, "the luck point is spent either way")
	s.Equal(18, output.Record.Attributes.StaminaCurrent, "the flee cost applies only on escape")
}

func (s *GameOrchestratorTestSuite) TestFleeLuckSuccessEscapes() {
	s.seedCombat(&gamebook.CombatState{
		Monsters: []gamebook.Monster{{Name: "ORC", Skill: 5, Stamina: 8}},
		Flee: &gamebook.FleeOption{
			Text:             "Fugir",
			RequiresLuckTest: true,
			GoTo:             "3",
		},
		VictoryGoTo: "1",
	})

	s.roller.Push(4) // under the remaining luck of 9

	output, err := s.svc.CombatAction(s.ctx, &game.CombatActionInput{
		PlayerID: testutils.TestPlayerID,
		Action:   game.CombatFlee,
		Round:    1,
	})
	s.Require().NoError(err)

	s.Nil(output.Record.Combat)
	s.Equal(9, output.Record.Attributes.LuckCurrent)
	s.Equal(16, output.Record.Attributes.StaminaCurrent)
	s.Equal("3", output.Record.CurrentSection)
}

func (s *GameOrchestratorTestSuite) TestUseLuckSpendsAPoint() {
	s.seedCombat(&gamebook.CombatState{
		Monsters:    []gamebook.Monster{{Name: "ORC", Skill: 5, Stamina: 8}},
		VictoryGoTo: "3",
	})

	s.roller.Push(5)

	output, err := s.svc.CombatAction(s.ctx, &game.CombatActionInput{
		PlayerID: testutils.TestPlayerID,
		Action:   game.CombatUseLuck,
		Round:    1,
	})
	s.Require().NoError(err)

	s.Equal(9, output.Record.Attributes.LuckCurrent)
	s.Require().NotNil(output.Record.Combat)
	s.Equal(2, output.Record.Combat.Round, "the fight goes on")
}

func (s *GameOrchestratorTestSuite) TestMagicHelmetBonusAppliedAtCombatStart() {
	rec := testutils.CreateTestPlayerRecord(testutils.TestPlayerID)
	rec.Inventory = append(rec.Inventory, "Elmo Mágico")
	s.seed(rec)

	_, err := s.svc.ChooseOption(s.ctx, &game.ChooseOptionInput{
		PlayerID:  testutils.TestPlayerID,
		SectionID: "2",
	})
	s.Require().NoError(err)
	s.Equal(1, s.reload(testutils.TestPlayerID).TemporaryModifiers.AttackRollBonus)

	// Strengths 7+9+1 against 11+5: without the helmet this round
	// would tie at 16.
	s.roller.Push(7, 11)
	output := s.attackRound(1)
	s.Equal(2, output.Record.Combat.CurrentMonster().Stamina)
}

func (s *GameOrchestratorTestSuite) TestCursedBootsPenaltyAppliedAtCombatStart() {
	rec := testutils.CreateTestPlayerRecord(testutils.TestPlayerID)
	rec.CursedItems = []string{"Botas Amaldiçoadas"}
	s.seed(rec)

	_, err := s.svc.ChooseOption(s.ctx, &game.ChooseOptionInput{
		PlayerID:  testutils.TestPlayerID,
		SectionID: "2",
	})
	s.Require().NoError(err)
	s.Equal(-2, s.reload(testutils.TestPlayerID).TemporaryModifiers.AttackRollPenalty)
}

func (s *GameOrchestratorTestSuite) TestCombatActionWithoutCombat() {
	rec := testutils.CreateTestPlayerRecord(testutils.TestPlayerID)
	s.seed(rec)

	output, err := s.svc.CombatAction(s.ctx, &game.CombatActionInput{
		PlayerID: testutils.TestPlayerID,
		Action:   game.CombatAttack,
		Round:    1,
	})
	s.Require().NoError(err)

	s.False(output.Ignored)
	s.Equal("Não há combate ativo no momento.", s.lastMessage().Text)
}
