// Package config provides YAML-based tuning for safari runs: the difficulty
// ladder and the playable animals with their abilities.
package config

import (
	"errors"
	"fmt"
)

// Lookup errors returned when a key is not present in the loaded config.
var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownAnimal     = errors.New("unknown animal")
)

// SafariConfig is the top-level configuration document.
// Lists are ordered; menus show entries in file order.
type SafariConfig struct {
	Difficulties []Difficulty `yaml:"difficulties"`
	Animals      []Animal     `yaml:"animals"`
}

// Difficulty tunes maze size, agent speeds and the life budget of a run.
type Difficulty struct {
	Key                string  `yaml:"key"`
	Label              string  `yaml:"label"`
	MazeWidth          int     `yaml:"maze_width"`
	MazeHeight         int     `yaml:"maze_height"`
	PlayerSpeed        float64 `yaml:"player_speed"`   // tiles per second
	PredatorSpeed      float64 `yaml:"predator_speed"` // tiles per second
	FrightenedDuration float64 `yaml:"frightened_duration"`
	Lives              int     `yaml:"lives"`
	Predators          int     `yaml:"predators"`
	// ExtraPredatorAt is the collected-pickup fraction that spawns one extra
	// fox per level. Zero disables the spawn.
	ExtraPredatorAt float64 `yaml:"extra_predator_at"`
}

// Animal describes a playable animal and its special ability.
type Animal struct {
	Key      string  `yaml:"key"`
	Label    string  `yaml:"label"`
	Ability  string  `yaml:"ability"` // short blurb for menus
	Cooldown float64 `yaml:"cooldown"`
	Duration float64 `yaml:"duration"`

	PassiveSpeed float64 `yaml:"passive_speed"` // always applied; 0 means 1.0
	AbilitySpeed float64 `yaml:"ability_speed"` // applied while active; 0 means 1.0
	WaterGlide   bool    `yaml:"water_glide"`   // water costs nothing
	Shields      int     `yaml:"shields"`       // charges granted per level
	Reflect      bool    `yaml:"reflect"`       // active ability bumps predators
	Scatter      bool    `yaml:"scatter"`       // active ability makes predators flee
}

// PassiveMultiplier returns the always-on speed multiplier.
func (a Animal) PassiveMultiplier() float64 {
	if a.PassiveSpeed <= 0 {
		return 1.0
	}
	return a.PassiveSpeed
}

// AbilityMultiplier returns the speed multiplier applied while the ability is active.
func (a Animal) AbilityMultiplier() float64 {
	if a.AbilitySpeed <= 0 {
		return 1.0
	}
	return a.AbilitySpeed
}

// Difficulty looks up a difficulty by key.
func (c SafariConfig) Difficulty(key string) (Difficulty, error) {
	for _, d := range c.Difficulties {
		if d.Key == key {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("config: difficulty %q: %w", key, ErrUnknownDifficulty)
}

// Animal looks up an animal by key.
func (c SafariConfig) Animal(key string) (Animal, error) {
	for _, a := range c.Animals {
		if a.Key == key {
			return a, nil
		}
	}
	return Animal{}, fmt.Errorf("config: animal %q: %w", key, ErrUnknownAnimal)
}

// DifficultyKeys returns the difficulty keys in config order.
func (c SafariConfig) DifficultyKeys() []string {
	keys := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		keys[i] = d.Key
	}
	return keys
}

// AnimalKeys returns the animal keys in config order.
func (c SafariConfig) AnimalKeys() []string {
	keys := make([]string, len(c.Animals))
	for i, a := range c.Animals {
		keys[i] = a.Key
	}
	return keys
}

// Validate checks that every entry is usable by the game.
func (c SafariConfig) Validate() error {
	if len(c.Difficulties) == 0 {
		return errors.New("config: no difficulties defined")
	}
	if len(c.Animals) == 0 {
		return errors.New("config: no animals defined")
	}

	seen := make(map[string]bool)
	for _, d := range c.Difficulties {
		if d.Key == "" {
			return errors.New("config: difficulty with empty key")
		}
		if seen["d:"+d.Key] {
			return fmt.Errorf("config: duplicate difficulty %q", d.Key)
		}
		seen["d:"+d.Key] = true

		switch {
		case d.MazeWidth < 3 || d.MazeHeight < 3:
			return fmt.Errorf("config: difficulty %q: maze must be at least 3x3", d.Key)
		case d.PlayerSpeed <= 0 || d.PredatorSpeed <= 0:
			return fmt.Errorf("config: difficulty %q: speeds must be positive", d.Key)
		case d.Lives < 1:
			return fmt.Errorf("config: difficulty %q: lives must be at least 1", d.Key)
		case d.Predators < 0:
			return fmt.Errorf("config: difficulty %q: predators must not be negative", d.Key)
		case d.FrightenedDuration < 0:
			return fmt.Errorf("config: difficulty %q: frightened_duration must not be negative", d.Key)
		case d.ExtraPredatorAt < 0 || d.ExtraPredatorAt > 1:
			return fmt.Errorf("config: difficulty %q: extra_predator_at must be within [0, 1]", d.Key)
		}
	}

	for _, a := range c.Animals {
		if a.Key == "" {
			return errors.New("config: animal with empty key")
		}
		if seen["a:"+a.Key] {
			return fmt.Errorf("config: duplicate animal %q", a.Key)
		}
		seen["a:"+a.Key] = true

		switch {
		case a.Cooldown < 0 || a.Duration < 0:
			return fmt.Errorf("config: animal %q: cooldown and duration must not be negative", a.Key)
		case a.PassiveSpeed < 0 || a.AbilitySpeed < 0:
			return fmt.Errorf("config: animal %q: speed multipliers must not be negative", a.Key)
		case a.Shields < 0:
			return fmt.Errorf("config: animal %q: shields must not be negative", a.Key)
		}
	}
	return nil
}
