package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Campaign holds the voice of a playthrough: who narrates, who the final
// adversary is and the fixed lines spoken around events. Messages may use
// {narrator}, {adversary} and {character} placeholders.
type Campaign struct {
	Name        string `json:"name"`
	Narrator    string `json:"narrator"`              // Speaker of event prompts
	Adversary   string `json:"adversary"`             // Faced in the boss encounter
	Welcome     string `json:"welcome,omitempty"`     // Spoken before character selection
	BossIntro   string `json:"boss_intro,omitempty"`  // Spoken when the boss encounter begins
	UpperHand   string `json:"upper_hand,omitempty"`  // After a boss round while ahead
	LosingHand  string `json:"losing_hand,omitempty"` // After a boss round while not ahead
	Victory     string `json:"victory,omitempty"`
	Defeat      string `json:"defeat,omitempty"`
	Description string `json:"description,omitempty"`
}

// DefaultCampaign returns the built-in campaign voice.
func DefaultCampaign() Campaign {
	return Campaign{
		Name:       "The Final Trial",
		Narrator:   "Dumbledore",
		Adversary:  "Voldemort",
		Welcome:    "Welcome, young wizard! The path ahead is filled with challenges, but I have no doubt that you are up to the task.",
		BossIntro:  "This is it... your final battle against {adversary}!",
		UpperHand:  "Well done! You have the upper hand over {adversary}!",
		LosingHand: "{adversary} is gaining the upper hand.",
		Victory:    "Congratulations! You have defeated {adversary}!",
		Defeat:     "{adversary} has defeated you... Better luck next time.",
	}
}

// WithDefaults fills empty fields from DefaultCampaign.
func (c Campaign) WithDefaults() Campaign {
	d := DefaultCampaign()
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = v
		}
	}
	fill(&c.Name, d.Name)
	fill(&c.Narrator, d.Narrator)
	fill(&c.Adversary, d.Adversary)
	fill(&c.Welcome, d.Welcome)
	fill(&c.BossIntro, d.BossIntro)
	fill(&c.UpperHand, d.UpperHand)
	fill(&c.LosingHand, d.LosingHand)
	fill(&c.Victory, d.Victory)
	fill(&c.Defeat, d.Defeat)
	return c
}

// Say expands placeholders in a campaign message.
func (c Campaign) Say(msg, character string) string {
	return strings.NewReplacer(
		"{narrator}", c.Narrator,
		"{adversary}", c.Adversary,
		"{character}", character,
	).Replace(msg)
}

// LoadCampaign reads a campaign from a JSON file and applies defaults.
func LoadCampaign(path string) (Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to read campaign file: %w", err)
	}
	return ParseCampaign(data)
}

// ParseCampaign decodes a campaign and applies defaults.
func ParseCampaign(data []byte) (Campaign, error) {
	var c Campaign
	if err := json.Unmarshal(data, &c); err != nil {
		return Campaign{}, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}
	return c.WithDefaults(), nil
}
