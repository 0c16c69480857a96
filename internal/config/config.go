// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Rules   TetrisRules   `yaml:"rules"`
	Gravity TetrisGravity `yaml:"gravity"`
}

// TetrisBoard defines the playfield geometry.
type TetrisBoard struct {
	Rows           int `yaml:"rows"`
	Columns        int `yaml:"columns"`
	ObstructedRows int `yaml:"obstructed_rows"`
}

// TetrisRules defines progression, preview and scoring.
type TetrisRules struct {
	LevelUpEvery     int   `yaml:"level_up_every"`
	VisibleNextCount int   `yaml:"visible_next_count"`
	LineScores       []int `yaml:"line_scores"`
	GhostEnabled     bool  `yaml:"ghost_enabled"`
}

// TetrisGravity defines the automatic fall interval.
type TetrisGravity struct {
	BaseDelayMS int     `yaml:"base_delay_ms"`
	Factor      float64 `yaml:"factor"`
	MinDelayMS  int     `yaml:"min_delay_ms"`
	Fixed       bool    `yaml:"fixed"`
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Rows <= 0:
		return fmt.Errorf("%w: board.rows must be positive, got %d", ErrInvalidConfig, c.Board.Rows)
	case c.Board.Columns < 4:
		return fmt.Errorf("%w: board.columns must be at least 4, got %d", ErrInvalidConfig, c.Board.Columns)
	case c.Board.ObstructedRows < 0 || c.Board.ObstructedRows >= c.Board.Rows:
		return fmt.Errorf("%w: board.obstructed_rows must be in [0, rows), got %d", ErrInvalidConfig, c.Board.ObstructedRows)
	case c.Rules.LevelUpEvery <= 0:
		return fmt.Errorf("%w: rules.level_up_every must be positive, got %d", ErrInvalidConfig, c.Rules.LevelUpEvery)
	case c.Rules.VisibleNextCount < 0 || c.Rules.VisibleNextCount > 6:
		return fmt.Errorf("%w: rules.visible_next_count must be in [0, 6], got %d", ErrInvalidConfig, c.Rules.VisibleNextCount)
	case len(c.Rules.LineScores) < 5:
		return fmt.Errorf("%w: rules.line_scores needs 5 entries (0-4 lines), got %d", ErrInvalidConfig, len(c.Rules.LineScores))
	case c.Gravity.BaseDelayMS <= 0:
		return fmt.Errorf("%w: gravity.base_delay_ms must be positive, got %d", ErrInvalidConfig, c.Gravity.BaseDelayMS)
	case c.Gravity.Factor <= 0 || c.Gravity.Factor > 1:
		return fmt.Errorf("%w: gravity.factor must be in (0, 1], got %g", ErrInvalidConfig, c.Gravity.Factor)
	case c.Gravity.MinDelayMS < 0:
		return fmt.Errorf("%w: gravity.min_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Gravity.MinDelayMS)
	}
	return nil
}
