// Package engineconfig holds globally available configuration, populated
// from an optional TOML file on disk and falling back to compiled-in
// defaults when the file is missing or unreadable.
package engineconfig

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/corvid/internal/util"
)

// ConfFile is the path to the config file, relative to the working
// directory unless absolute.
var ConfFile = "./config.toml"

// Settings is the global configuration, read once via Setup.
var Settings conf

var initialized = false

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

type searchConfiguration struct {
	// UseQuiescence enables captures-only quiescence search at the
	// horizon; with it off, negamax would evaluate noisy positions at
	// the exact depth cutoff and misjudge hanging captures.
	UseQuiescence bool

	// UseTT enables transposition table probing and storing.
	UseTT bool
	// TTSizeMB bounds the transposition table's memory footprint.
	TTSizeMB int

	// UseAspiration enables narrow-window aspiration search at the root
	// for depths beyond the first; with it off, every depth searches
	// the full [-inf, +inf] window.
	UseAspiration bool
}

type evalConfiguration struct {
	// Tempo is a small centipawn bonus credited to the side to move,
	// reflecting that having the move is itself worth a fraction of a
	// pawn.
	Tempo int
}

func init() {
	Settings.Search.UseQuiescence = true
	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64
	Settings.Search.UseAspiration = true

	Settings.Eval.Tempo = 10
}

// Setup reads ConfFile if present, overlaying any fields it sets onto the
// compiled-in defaults, and marks configuration as initialized. Safe to
// call more than once; only the first call has an effect.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("Config file not found, using defaults. (", err, ")")
		}
	}
	initialized = true
}
