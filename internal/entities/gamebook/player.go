// Package gamebook defines the persisted player record and the immutable
// narrative dataset types for the gamebook engine.
package gamebook

import "time"

// Onboarding stage keys stored in CurrentSection before the adventure
// proper begins, plus the waiting states used by the mini-games.
const (
	StageGenerateSkill   = "generate_attributes_skill"
	StageGenerateStamina = "generate_attributes_stamina"
	StageGenerateLuck    = "generate_attributes_luck"
	StageChoosePotion    = "choose_potion"
	StageAwaitingBet     = "awaiting_bet"
	StageAwaitingCard    = "awaiting_card_game_choice"
)

// Attribute identifies one of the player's numeric pools.
type Attribute string

// Attribute values
const (
	AttributeSkill      Attribute = "skill"
	AttributeStamina    Attribute = "stamina"
	AttributeLuck       Attribute = "luck"
	AttributeGold       Attribute = "gold"
	AttributeProvisions Attribute = "provisions"
)

// DisplayName returns the name the adventure sheet and notifications use.
// The narrative text is Portuguese, so the pools keep their book names.
func (a Attribute) DisplayName() string {
	switch a {
	case AttributeSkill:
		return "HABILIDADE"
	case AttributeStamina:
		return "ENERGIA"
	case AttributeLuck:
		return "SORTE"
	case AttributeGold:
		return "OURO"
	case AttributeProvisions:
		return "PROVISÕES"
	default:
		return string(a)
	}
}

// AttributeBlock holds the three core pools, each with an initial
// (maximum) and current value.
type AttributeBlock struct {
	SkillInitial   int `json:"skillInitial"`
	SkillCurrent   int `json:"skillCurrent"`
	StaminaInitial int `json:"staminaInitial"`
	StaminaCurrent int `json:"staminaCurrent"`
	LuckInitial    int `json:"luckInitial"`
	LuckCurrent    int `json:"luckCurrent"`
}

// Current returns the current value of a core attribute
func (b *AttributeBlock) Current(a Attribute) int {
	switch a {
	case AttributeSkill:
		return b.SkillCurrent
	case AttributeStamina:
		return b.StaminaCurrent
	case AttributeLuck:
		return b.LuckCurrent
	default:
		return 0
	}
}

// Initial returns the initial value of a core attribute
func (b *AttributeBlock) Initial(a Attribute) int {
	switch a {
	case AttributeSkill:
		return b.SkillInitial
	case AttributeStamina:
		return b.StaminaInitial
	case AttributeLuck:
		return b.LuckInitial
	default:
		return 0
	}
}

// SetCurrent sets the current value of a core attribute
func (b *AttributeBlock) SetCurrent(a Attribute, v int) {
	switch a {
	case AttributeSkill:
		b.SkillCurrent = v
	case AttributeStamina:
		b.StaminaCurrent = v
	case AttributeLuck:
		b.LuckCurrent = v
	}
}

// SetInitial sets the initial value of a core attribute
func (b *AttributeBlock) SetInitial(a Attribute, v int) {
	switch a {
	case AttributeSkill:
		b.SkillInitial = v
	case AttributeStamina:
		b.StaminaInitial = v
	case AttributeLuck:
		b.LuckInitial = v
	}
}

// Floor returns the lowest legal current value for a core attribute.
// Skill bottoms out at 1, everything else at 0.
func (a Attribute) Floor() int {
	if a == AttributeSkill {
		return 1
	}
	return 0
}

// Jewel is a valuable carried outside the regular inventory
type Jewel struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PotionType is the lineage of the potion chosen at character creation.
type PotionType string

// The three potion lineages
const (
	PotionSkill    PotionType = "skill"
	PotionStrength PotionType = "strength"
	PotionFortune  PotionType = "fortune"
)

// Potion is the dose-limited potion chosen once during creation
type Potion struct {
	Name  string     `json:"name"`
	Doses int        `json:"doses"`
	Type  PotionType `json:"type"`
}

// TemporaryModifiers are combat-scoped adjustments, reset whenever the
// player leaves combat through normal navigation.
type TemporaryModifiers struct {
	AttackRollBonus   int `json:"attackRollBonus,omitempty"`
	AttackRollPenalty int `json:"attackRollPenalty,omitempty"`
	// LastCombatWounded records whether the player dealt at least one
	// wound in the most recent combat; conditional follow-up events
	// (the piranha attack) read it.
	LastCombatWounded bool `json:"lastCombatWounded,omitempty"`
}

// CombatState is the live state of a round-based battle. It exists only
// while a combat is active and is destroyed on victory, flight, or a
// narrative override.
type CombatState struct {
	// Monsters are snapshots copied from the dataset so runtime damage
	// never mutates the dataset.
	Monsters            []Monster     `json:"monsters"`
	CurrentMonsterIndex int           `json:"currentMonsterIndex"`
	Round               int           `json:"round"`
	Flee                *FleeOption   `json:"flee,omitempty"`
	VictoryGoTo         string        `json:"victoryGoTo"`
	SpecialInstructions string        `json:"specialInstructions,omitempty"`
	Events              []CombatEvent `json:"events,omitempty"`
	// LastActionRound is the last round for which a player action was
	// accepted; it guards against duplicate delivery of the same action.
	LastActionRound int `json:"lastActionRound"`
}

// CurrentMonster returns the active opponent, or nil when none remain
func (c *CombatState) CurrentMonster() *Monster {
	if c == nil || c.CurrentMonsterIndex >= len(c.Monsters) {
		return nil
	}
	return &c.Monsters[c.CurrentMonsterIndex]
}

// PlayerRecord is one player's mutable progress, persisted as a single
// JSON document keyed by player identifier.
type PlayerRecord struct {
	PlayerID       string          `json:"playerId"`
	CurrentSection string          `json:"currentSectionId"`
	Attributes     AttributeBlock  `json:"attributes"`
	Gold           int             `json:"gold"`
	Provisions     int             `json:"provisions"`
	Inventory      []string        `json:"inventory"`
	Jewels         []Jewel         `json:"jewels,omitempty"`
	Potion         *Potion         `json:"potion,omitempty"`
	Knowledge      map[string]bool `json:"knowledge,omitempty"`
	CursedItems    []string        `json:"cursedItems,omitempty"`

	TemporaryModifiers TemporaryModifiers `json:"temporaryModifiers"`
	Combat             *CombatState       `json:"combat,omitempty"`

	// PendingTestSuccesses counts consecutive successes of an
	// in-progress repeated luck test.
	PendingTestSuccesses int `json:"pendingTestSuccesses,omitempty"`

	// Bookmark remembers a section id so a later "return to where you
	// were" event can resume correctly.
	Bookmark string `json:"anotatedSection,omitempty"`

	// LastMessageID is transport bookkeeping for gateways that edit
	// previously delivered messages.
	LastMessageID string `json:"lastMessageId,omitempty"`

	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// New creates a fresh record for a player who has not begun a journey
func New(playerID string) *PlayerRecord {
	return &PlayerRecord{
		PlayerID:  playerID,
		Inventory: []string{},
		Jewels:    []Jewel{},
	}
}

// Started reports whether attributes have been generated
func (p *PlayerRecord) Started() bool {
	return p.Attributes.SkillInitial > 0
}

// InCombat reports whether a battle is active
func (p *PlayerRecord) InCombat() bool {
	return p.Combat != nil
}

// HasItem reports whether the inventory holds an exact item
func (p *PlayerRecord) HasItem(item string) bool {
	for _, it := range p.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// RemoveItem removes the first matching inventory entry and reports
// whether anything was removed
func (p *PlayerRecord) RemoveItem(item string) bool {
	for i, it := range p.Inventory {
		if it == item {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// HasKnowledge reports whether a knowledge tag was acquired
func (p *PlayerRecord) HasKnowledge(tag string) bool {
	return p.Knowledge[tag]
}

// GainKnowledge sets a knowledge tag
func (p *PlayerRecord) GainKnowledge(tag string) {
	if p.Knowledge == nil {
		p.Knowledge = make(map[string]bool)
	}
	p.Knowledge[tag] = true
}

// ClearTransient resets combat, temporary modifiers, and the bookmark.
// Called when the player navigates through a normal option.
func (p *PlayerRecord) ClearTransient() {
	p.Combat = nil
	p.TemporaryModifiers = TemporaryModifiers{}
	p.Bookmark = ""
}
