// Package builders provides fluent builders for narrative fixtures
package builders

import (
	"github.com/firetop/gamebook-api/internal/entities/gamebook"
)

// SectionBuilder assembles a SectionDefinition for tests
type SectionBuilder struct {
	section gamebook.SectionDefinition
}

// NewSection creates a builder with the given text lines
func NewSection(text ...string) *SectionBuilder {
	return &SectionBuilder{section: gamebook.SectionDefinition{Text: text}}
}

// WithOption adds an ungated navigation option
func (b *SectionBuilder) WithOption(text, goTo string) *SectionBuilder {
	b.section.Options = append(b.section.Options, gamebook.Option{Text: text, GoTo: goTo})
	return b
}

// WithGatedOption adds a navigation option behind a requirement
func (b *SectionBuilder) WithGatedOption(text, goTo string, req *gamebook.Requirement) *SectionBuilder {
	b.section.Options = append(b.section.Options, gamebook.Option{Text: text, GoTo: goTo, Requirement: req})
	return b
}

// WithCombat sets the combat spec
func (b *SectionBuilder) WithCombat(spec *gamebook.CombatSpec) *SectionBuilder {
	b.section.Combat = spec
	return b
}

// WithLuckTest sets the luck test spec
func (b *SectionBuilder) WithLuckTest(success, failure gamebook.TestBranch) *SectionBuilder {
	b.section.LuckTest = &gamebook.LuckTestSpec{Success: success, Failure: failure}
	return b
}

// WithDiceTest sets the dice test spec
func (b *SectionBuilder) WithDiceTest(dice int, conditions ...gamebook.DiceCondition) *SectionBuilder {
	b.section.DiceTest = &gamebook.DiceTestSpec{Dice: dice, Conditions: conditions}
	return b
}

// WithAttributeTest sets the attribute test spec
func (b *SectionBuilder) WithAttributeTest(spec *gamebook.AttributeTestSpec) *SectionBuilder {
	b.section.AttributeTest = spec
	return b
}

// WithRepeatedLuckTest sets the repeated luck test spec
func (b *SectionBuilder) WithRepeatedLuckTest(spec *gamebook.RepeatedLuckTestSpec) *SectionBuilder {
	b.section.RepeatedLuckTest = spec
	return b
}

// WithModifier appends an unconditional attribute modifier
func (b *SectionBuilder) WithModifier(mod gamebook.AttributeModifier) *SectionBuilder {
	b.section.Modifiers = append(b.section.Modifiers, mod)
	return b
}

// WithItemFound appends a found item
func (b *SectionBuilder) WithItemFound(item gamebook.ItemFound) *SectionBuilder {
	b.section.ItemsFound = append(b.section.ItemsFound, item)
	return b
}

// WithEvent sets the section event
func (b *SectionBuilder) WithEvent(ev *gamebook.EventSpec) *SectionBuilder {
	b.section.Event = ev
	return b
}

// WithEndOfGame marks the section terminal
func (b *SectionBuilder) WithEndOfGame(end gamebook.EndOfGame) *SectionBuilder {
	b.section.EndOfGame = end
	return b
}

// WithBookmark sets the bookmark directive
func (b *SectionBuilder) WithBookmark(sectionID string) *SectionBuilder {
	b.section.Bookmark = sectionID
	return b
}

// Build returns the assembled section
func (b *SectionBuilder) Build() *gamebook.SectionDefinition {
	s := b.section
	return &s
}
