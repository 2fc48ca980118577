// Package dataset loads the immutable narrative data: the section graph
// and the static intro texts. Both documents are read once at startup
// and never mutated; a missing or malformed file is fatal.
package dataset

import (
	"encoding/json"
	"os"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
)

// StagePrompt is one attribute-generation step of character creation
type StagePrompt struct {
	Prompt      string `json:"prompt"`
	ButtonText  string `json:"buttonText"`
	InvalidRoll string `json:"invalidRoll"`
}

// PotionOption is one selectable starting potion
type PotionOption struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Texts holds the static text tables outside the section graph
type Texts struct {
	Welcome          string `json:"welcomeMessage"`
	Rumors           string `json:"rumorsText"`
	Help             string `json:"helpMessage"`
	Instructions     string `json:"instructionsMessage"`
	ResetGameConfirm string `json:"resetGameConfirm"`

	Common struct {
		InvalidChoice string `json:"invalidChoice"`
		StartNewGame  string `json:"startNewGame"`
	} `json:"common"`

	AttributeGeneration struct {
		Skill         StagePrompt    `json:"skill"`
		Stamina       StagePrompt    `json:"stamina"`
		Luck          StagePrompt    `json:"luck"`
		PotionChoice  string         `json:"potionChoice"`
		PotionOptions []PotionOption `json:"potionOptions"`
		InvalidPotion string         `json:"invalidPotion"`
	} `json:"attributeGeneration"`
}

// Config holds the paths of the two narrative documents
type Config struct {
	StoryPath string
	TextsPath string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("StoryPath", cfg.StoryPath, vb)
	errors.ValidateRequired("TextsPath", cfg.TextsPath, vb)
	return vb.Build()
}

// Dataset is the loaded, read-only narrative data
type Dataset struct {
	sections map[string]*gamebook.SectionDefinition
	texts    *Texts
}

// Load reads both documents from disk
func Load(cfg *Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sections, err := loadSections(cfg.StoryPath)
	if err != nil {
		return nil, err
	}

	texts, err := loadTexts(cfg.TextsPath)
	if err != nil {
		return nil, err
	}

	return &Dataset{sections: sections, texts: texts}, nil
}

// New builds a dataset from already-parsed data, for tests and fixtures
func New(sections map[string]*gamebook.SectionDefinition, texts *Texts) *Dataset {
	if sections == nil {
		sections = map[string]*gamebook.SectionDefinition{}
	}
	if texts == nil {
		texts = &Texts{}
	}
	return &Dataset{sections: sections, texts: texts}
}

func loadSections(path string) (map[string]*gamebook.SectionDefinition, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from server config
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "story document missing: %s", path)
	}

	var sections map[string]*gamebook.SectionDefinition
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "story document malformed: %s", path)
	}
	return sections, nil
}

func loadTexts(path string) (*Texts, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from server config
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "texts document missing: %s", path)
	}

	var texts Texts
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "texts document malformed: %s", path)
	}
	return &texts, nil
}

// Section returns a section definition by id
func (d *Dataset) Section(id string) (*gamebook.SectionDefinition, error) {
	section, ok := d.sections[id]
	if !ok {
		return nil, errors.NotFoundf("section %s not found", id)
	}
	return section, nil
}

// HasSection reports whether a section id exists. The key-sum puzzle
// uses this to decide whether a computed sum opens anything.
func (d *Dataset) HasSection(id string) bool {
	_, ok := d.sections[id]
	return ok
}

// Texts returns the static text tables
func (d *Dataset) Texts() *Texts {
	return d.texts
}

// Len returns the number of sections loaded
func (d *Dataset) Len() int {
	return len(d.sections)
}
