package seed

import (
	_ "embed"
	"fmt"
	"os"

	"semicolon_service/internal/memory/domain"

	"gopkg.in/yaml.v3"
)

//go:embed story.yaml
var defaultStory []byte

// Story everything /init writes
type Story struct {
	Config   domain.Setting  `yaml:"config"`
	Memories []domain.Memory `yaml:"memories"`
}

// Load read the story file at path, the embedded default story when path is empty
func Load(path string) (*Story, error) {
	raw := defaultStory
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read story %s: %w", path, err)
		}
	}
	return Parse(raw)
}

// Parse decode and validate a story document
func Parse(raw []byte) (*Story, error) {
	var story Story
	if err := yaml.Unmarshal(raw, &story); err != nil {
		return nil, fmt.Errorf("decode story: %w", err)
	}
	story.Config.Key = domain.ConfigKey
	if err := domain.ValidateStory(story.Memories); err != nil {
		return nil, err
	}
	return &story, nil
}
