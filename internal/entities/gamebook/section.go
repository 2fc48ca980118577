package gamebook

// Monster is a combat opponent as defined by the dataset
type Monster struct {
	Name    string `json:"name"`
	Skill   int    `json:"skill"`
	Stamina int    `json:"stamina"`
}

// ModifierMode selects how an attribute modifier is applied.
type ModifierMode string

// Modifier modes. The zero value adds the amount to the current value.
const (
	ModeAdjust      ModifierMode = ""
	ModeRestoreFull ModifierMode = "restore_full"
	ModeRestoreUpTo ModifierMode = "restore_up_to"
	ModeBoth        ModifierMode = "both"
)

// AttributeModifier is a data-described change to one attribute
type AttributeModifier struct {
	Attribute Attribute    `json:"attribute"`
	Amount    int          `json:"amount"`
	Mode      ModifierMode `json:"mode,omitempty"`
	Item      string       `json:"item,omitempty"`
}

// ItemFound describes an item granted by a section
type ItemFound struct {
	Item          string `json:"item"`
	Quantity      int    `json:"quantity,omitempty"`
	GoldValue     int    `json:"goldValue,omitempty"`
	MandatorySwap bool   `json:"mandatorySwap,omitempty"`
}

// TestBranch is one outcome of a randomized test
type TestBranch struct {
	Text   string             `json:"text,omitempty"`
	Effect *AttributeModifier `json:"effect,omitempty"`
	GoTo   string             `json:"goTo"`
}

// LuckTestSpec is a single luck test with two outcomes
type LuckTestSpec struct {
	Success TestBranch `json:"success"`
	Failure TestBranch `json:"failure"`
}

// DiceCondition matches a dice-test roll either exactly or inclusively
type DiceCondition struct {
	Value   *int               `json:"value,omitempty"`
	Between *[2]int            `json:"between,omitempty"`
	Text    string             `json:"text,omitempty"`
	Effect  *AttributeModifier `json:"effect,omitempty"`
	GoTo    string             `json:"goTo"`
}

// Matches reports whether the roll satisfies this condition
func (c *DiceCondition) Matches(roll int) bool {
	if c.Value != nil {
		return roll == *c.Value
	}
	if c.Between != nil {
		return roll >= c.Between[0] && roll <= c.Between[1]
	}
	return false
}

// DiceTestSpec rolls N six-sided dice and branches on the first
// matching condition
type DiceTestSpec struct {
	Dice       int             `json:"dice"`
	Conditions []DiceCondition `json:"conditions"`
}

// AttributeTestSpec rolls N dice against the current value of an
// attribute
type AttributeTestSpec struct {
	Attribute Attribute  `json:"attribute"`
	Dice      int        `json:"dice"`
	Success   TestBranch `json:"success"`
	Failure   TestBranch `json:"failure"`
}

// RepeatedLuckTestSpec requires several consecutive luck successes
type RepeatedLuckTestSpec struct {
	Attempts     int        `json:"attempts"`
	Instructions string     `json:"instructions,omitempty"`
	Success      TestBranch `json:"success"`
	Failure      TestBranch `json:"failure"`
}

// CombatEventCondition is the trigger class of a combat-scoped event.
type CombatEventCondition string

// Combat event conditions
const (
	CombatEventMonsterDefeated CombatEventCondition = "monster_defeated"
	CombatEventFirstWound      CombatEventCondition = "first_wound_dealt"
)

// CombatEvent is a conditional trigger evaluated during combat
type CombatEvent struct {
	Condition CombatEventCondition `json:"condition"`
	Target    int                  `json:"target"`
	Text      string               `json:"text,omitempty"`
	Effect    *AttributeModifier   `json:"effect,omitempty"`
	GoTo      string               `json:"goTo,omitempty"`
}

// FleeOption describes how and when a combat can be abandoned
type FleeOption struct {
	Text             string     `json:"text"`
	MinRound         int        `json:"minRound,omitempty"`
	RequiresLuckTest bool       `json:"requiresLuckTest,omitempty"`
	Effect           *EventSpec `json:"effect,omitempty"`
	GoTo             string     `json:"goTo"`
}

// CombatSpec is a battle as defined by the dataset
type CombatSpec struct {
	Monsters            []Monster     `json:"monsters"`
	Flee                *FleeOption   `json:"flee,omitempty"`
	VictoryGoTo         string        `json:"victoryGoTo"`
	SpecialInstructions string        `json:"specialInstructions,omitempty"`
	Events              []CombatEvent `json:"events,omitempty"`
}

// EventKind is the closed set of section event types.
type EventKind string

// Event kinds. The last five own navigation: they decide the next
// section themselves and suppress the caller's normal continuation.
const (
	EventRest              EventKind = "rest"
	EventEnchantedRest     EventKind = "enchanted_rest"
	EventSharedRest        EventKind = "shared_rest"
	EventItemLost          EventKind = "item_lost"
	EventDiscardItemOrGold EventKind = "discard_item_or_gold"
	EventKnowledgeGained   EventKind = "knowledge_gained"
	EventItemCursed        EventKind = "item_cursed"
	EventKeyPuzzle         EventKind = "key_puzzle"
	EventWanderingMonster  EventKind = "wandering_monster"
	EventDiceBet           EventKind = "dice_bet"
	EventLuckCardGame      EventKind = "luck_card_game"
	EventPiranhaCombat     EventKind = "piranha_combat"
)

// OwnsNavigation reports whether the event kind decides the next
// section itself
func (k EventKind) OwnsNavigation() bool {
	switch k {
	case EventKeyPuzzle, EventWanderingMonster, EventDiceBet, EventLuckCardGame, EventPiranhaCombat:
		return true
	default:
		return false
	}
}

// EventSpec is a section event. Kind selects which fields are read.
type EventSpec struct {
	Kind EventKind `json:"kind"`

	// item_lost, item_cursed
	Item string `json:"item,omitempty"`

	// knowledge_gained
	Knowledge string `json:"knowledge,omitempty"`

	// key_puzzle
	KeysRequired int    `json:"keysRequired,omitempty"`
	FallbackTrap string `json:"fallbackTrap,omitempty"`

	// wandering_monster: table keyed by the d6 roll
	Table           map[string]Monster `json:"table,omitempty"`
	FallbackSection string             `json:"fallbackSection,omitempty"`

	// dice_bet
	MinBet        int                 `json:"minBet,omitempty"`
	MaxBet        int                 `json:"maxBet,omitempty"`
	VictoryReward []AttributeModifier `json:"victoryReward,omitempty"`

	// luck_card_game
	SuccessGoTo string `json:"successGoTo,omitempty"`
	FailureGoTo string `json:"failureGoTo,omitempty"`

	// piranha_combat
	Monster       *Monster            `json:"monster,omitempty"`
	SafeGoTo      string              `json:"safeGoTo,omitempty"`
	CombatGoTo    string              `json:"combatGoTo,omitempty"`
	WoundedGoTo   string              `json:"woundedGoTo,omitempty"`
	WoundedReward []AttributeModifier `json:"woundedReward,omitempty"`
}

// Requirement gates a navigation option on the player's state. Checks
// are evaluated in field order; the zero value gates nothing.
type Requirement struct {
	Gold      int    `json:"gold,omitempty"`
	ItemClass string `json:"itemClass,omitempty"`
	Knowledge string `json:"knowledge,omitempty"`
	Item      string `json:"item,omitempty"`
}

// Option is one navigable choice out of a section
type Option struct {
	Text        string       `json:"text"`
	GoTo        string       `json:"goTo"`
	Requirement *Requirement `json:"requirement,omitempty"`
}

// EndOfGame marks a terminal section.
type EndOfGame string

// Terminal section markers
const (
	EndNone    EndOfGame = ""
	EndVictory EndOfGame = "victory"
	EndDefeat  EndOfGame = "defeat"
)

// SectionDefinition is one node of the narrative graph. At most one of
// Combat and the four test specs is set; it governs the section.
type SectionDefinition struct {
	Text  []string `json:"text"`
	Image string   `json:"image,omitempty"`

	Combat           *CombatSpec           `json:"combat,omitempty"`
	LuckTest         *LuckTestSpec         `json:"luckTest,omitempty"`
	DiceTest         *DiceTestSpec         `json:"diceTest,omitempty"`
	AttributeTest    *AttributeTestSpec    `json:"attributeTest,omitempty"`
	RepeatedLuckTest *RepeatedLuckTestSpec `json:"repeatedLuckTest,omitempty"`

	Modifiers  []AttributeModifier `json:"modifiers,omitempty"`
	ItemsFound []ItemFound         `json:"itemsFound,omitempty"`
	Event      *EventSpec          `json:"event,omitempty"`

	Options   []Option  `json:"options,omitempty"`
	EndOfGame EndOfGame `json:"endOfGame,omitempty"`

	// Bookmark schedules a "return here" point for wandering-monster
	// events triggered later.
	Bookmark string `json:"bookmark,omitempty"`
}
