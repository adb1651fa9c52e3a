package content

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed landing.yaml
var defaultLanding []byte

// Anchor is an in-page navigation link such as "#features".
type Anchor struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

// Feature is one card of the feature grid.
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// TranscriptSegment is one speaker-attributed line of the demo transcript.
// Start and End are offsets in seconds.
type TranscriptSegment struct {
	Speaker string  `yaml:"speaker" validate:"required"`
	Start   float64 `yaml:"start" validate:"gte=0"`
	End     float64 `yaml:"end" validate:"gtefield=Start"`
	Text    string  `yaml:"text" validate:"required"`
}

// Plan is one column of the pricing table.
type Plan struct {
	Name        string   `yaml:"name" validate:"required"`
	Price       string   `yaml:"price" validate:"required"`
	Period      string   `yaml:"period"`
	Highlighted bool     `yaml:"highlighted"`
	Features    []string `yaml:"features"`
}

// Landing is the static data behind the landing page.
type Landing struct {
	Anchors    []Anchor            `yaml:"anchors" validate:"dive"`
	Features   []Feature           `yaml:"features" validate:"dive"`
	Plans      []Plan              `yaml:"plans" validate:"dive"`
	Transcript []TranscriptSegment `yaml:"transcript" validate:"dive"`
}

var validate = validator.New()

// Default returns the built-in landing content.
func Default() (*Landing, error) {
	return Parse(defaultLanding)
}

// Load reads the landing content from path on fs. An empty path selects the
// built-in content.
func Load(fs afero.Fs, path string) (*Landing, error) {
	if path == "" {
		return Default()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	landing, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return landing, nil
}

// Parse decodes and validates YAML landing content.
func Parse(data []byte) (*Landing, error) {
	var landing Landing
	if err := yaml.Unmarshal(data, &landing); err != nil {
		return nil, fmt.Errorf("failed to parse landing content: %w", err)
	}
	if err := validate.Struct(&landing); err != nil {
		return nil, fmt.Errorf("invalid landing content: %w", err)
	}
	return &landing, nil
}
