// Command corvidchess runs the engine as a UCI process: it reads commands
// from stdin and writes responses to stdout until "quit", per spec §6.
package main

import (
	"flag"
	"os"

	"github.com/pkg/profile"

	"github.com/corvidchess/corvid/internal/engineconfig"
	"github.com/corvidchess/corvid/internal/enginelog"
	"github.com/corvidchess/corvid/internal/uciproto"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof while running")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	engineconfig.ConfFile = *configFile
	engineconfig.Setup()

	log := enginelog.GetLog()
	log.Info("corvidchess starting, reading UCI commands from stdin")

	uciproto.New(os.Stdin, os.Stdout).Loop()

	log.Info("corvidchess exiting")
}
