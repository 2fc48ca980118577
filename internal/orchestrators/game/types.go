// Package game implements the gamebook engine: section resolution,
// effect application, randomized tests, and round-based combat.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/firetop/gamebook-api/internal/orchestrators/game Service

import (
	"context"

	"github.com/firetop/gamebook-api/internal/dataset"
	"github.com/firetop/gamebook-api/internal/dice"
	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/notify"
	"github.com/firetop/gamebook-api/internal/repositories/player"
)

// Service defines the interface for game operations
type Service interface {
	// HandleAction dispatches an opaque action token coming back from a
	// rendered choice. Unknown tokens notify the player and mutate
	// nothing.
	HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error)

	// ShowMenu renders the welcome menu
	ShowMenu(ctx context.Context, input *ShowMenuInput) (*ShowMenuOutput, error)

	// StartJourney resets the record to fresh defaults and begins
	// character creation
	StartJourney(ctx context.Context, input *StartJourneyInput) (*StartJourneyOutput, error)

	// RollAttribute resolves one attribute-generation step
	RollAttribute(ctx context.Context, input *RollAttributeInput) (*RollAttributeOutput, error)

	// ChoosePotion picks the starting potion and enters the first section
	ChoosePotion(ctx context.Context, input *ChoosePotionInput) (*ChoosePotionOutput, error)

	// ChooseOption follows a normal navigation option, clearing any
	// transient combat state
	ChooseOption(ctx context.Context, input *ChooseOptionInput) (*ChooseOptionOutput, error)

	// RunLuckTest resolves the current section's luck test
	RunLuckTest(ctx context.Context, input *RunTestInput) (*RunTestOutput, error)

	// RunDiceTest resolves the current section's dice test
	RunDiceTest(ctx context.Context, input *RunTestInput) (*RunTestOutput, error)

	// RunAttributeTest resolves the current section's attribute test
	RunAttributeTest(ctx context.Context, input *RunTestInput) (*RunTestOutput, error)

	// RunRepeatedLuckTest resolves one attempt of the current section's
	// repeated luck test
	RunRepeatedLuckTest(ctx context.Context, input *RunTestInput) (*RunTestOutput, error)

	// CombatAction applies one combat action for a given round. A round
	// that was already actioned is silently ignored.
	CombatAction(ctx context.Context, input *CombatActionInput) (*CombatActionOutput, error)

	// PlaceBet resolves one round of the betting dice game
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// PlayCardGame resolves the card game, honestly or by cheating
	PlayCardGame(ctx context.Context, input *PlayCardGameInput) (*PlayCardGameOutput, error)

	// AdventureSheet renders the player's current adventure sheet
	AdventureSheet(ctx context.Context, input *AdventureSheetInput) (*AdventureSheetOutput, error)

	// Reset deletes the player's record
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

// HandleActionInput defines the input for dispatching an action token
type HandleActionInput struct {
	PlayerID string
	Action   string
}

// HandleActionOutput defines the output for dispatching an action token
type HandleActionOutput struct{}

// ShowMenuInput defines the input for rendering the welcome menu
type ShowMenuInput struct {
	PlayerID string
}

// ShowMenuOutput defines the output for rendering the welcome menu
type ShowMenuOutput struct{}

// StartJourneyInput defines the input for starting a journey
type StartJourneyInput struct {
	PlayerID string
}

// StartJourneyOutput defines the output for starting a journey
type StartJourneyOutput struct {
	Record *gamebook.PlayerRecord
}

// RollAttributeInput defines the input for one attribute-generation roll
type RollAttributeInput struct {
	PlayerID  string
	Attribute gamebook.Attribute
}

// RollAttributeOutput defines the output for one attribute-generation roll
type RollAttributeOutput struct {
	Rolled int
	Record *gamebook.PlayerRecord
}

// ChoosePotionInput defines the input for choosing the starting potion
type ChoosePotionInput struct {
	PlayerID string
	Type     gamebook.PotionType
}

// ChoosePotionOutput defines the output for choosing the starting potion
type ChoosePotionOutput struct {
	Record *gamebook.PlayerRecord
}

// ChooseOptionInput defines the input for following a navigation option
type ChooseOptionInput struct {
	PlayerID  string
	SectionID string
}

// ChooseOptionOutput defines the output for following a navigation option
type ChooseOptionOutput struct {
	Record *gamebook.PlayerRecord
}

// RunTestInput defines the input for resolving a randomized test
type RunTestInput struct {
	PlayerID string
}

// RunTestOutput defines the output for resolving a randomized test
type RunTestOutput struct {
	Record *gamebook.PlayerRecord
}

// Combat actions
const (
	CombatAttack  = "attack"
	CombatFlee    = "flee"
	CombatUseLuck = "use_luck"
)

// CombatActionInput defines the input for one combat action
type CombatActionInput struct {
	PlayerID string
	Action   string
	Round    int
}

// CombatActionOutput defines the output for one combat action
type CombatActionOutput struct {
	// Ignored reports that the action targeted an already-resolved
	// round and was dropped
	Ignored bool
	Record  *gamebook.PlayerRecord
}

// PlaceBetInput defines the input for one betting round
type PlaceBetInput struct {
	PlayerID string
	Amount   int
	// All bets the player's entire gold, overriding Amount
	All bool
}

// PlaceBetOutput defines the output for one betting round
type PlaceBetOutput struct {
	Won    bool
	Record *gamebook.PlayerRecord
}

// PlayCardGameInput defines the input for the card game
type PlayCardGameInput struct {
	PlayerID string
	Cheat    bool
}

// PlayCardGameOutput defines the output for the card game
type PlayCardGameOutput struct {
	Won    bool
	Record *gamebook.PlayerRecord
}

// AdventureSheetInput defines the input for rendering the sheet
type AdventureSheetInput struct {
	PlayerID string
}

// AdventureSheetOutput defines the output for rendering the sheet
type AdventureSheetOutput struct {
	Sheet string
}

// ResetInput defines the input for resetting the adventure
type ResetInput struct {
	PlayerID string
}

// ResetOutput defines the output for resetting the adventure
type ResetOutput struct {
	// Deleted reports whether a record existed
	Deleted bool
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	PlayerRepo player.Repository
	Dataset    *dataset.Dataset
	Sink       notify.Sink
	Roller     dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Dataset == nil {
		vb.RequiredField("Dataset")
	}
	if c.Sink == nil {
		vb.RequiredField("Sink")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo player.Repository
	dataset    *dataset.Dataset
	sink       notify.Sink
	roller     dice.Roller
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		dataset:    cfg.Dataset,
		sink:       cfg.Sink,
		roller:     cfg.Roller,
	}, nil
}
