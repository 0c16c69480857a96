package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
// It mirrors defaults/tetris.yaml and is used if the embedded file fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Rows:           22,
			Columns:        10,
			ObstructedRows: 2,
		},
		Rules: TetrisRules{
			LevelUpEvery:     25,
			VisibleNextCount: 1,
			LineScores:       []int{0, 40, 100, 300, 1200},
			GhostEnabled:     true,
		},
		Gravity: TetrisGravity{
			BaseDelayMS: 1000,
			Factor:      0.9,
			MinDelayMS:  50,
			Fixed:       false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
