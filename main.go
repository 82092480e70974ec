package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/soundpad/cmd/board"
	"github.com/gigurra/soundpad/cmd/export"
	"github.com/gigurra/soundpad/cmd/play"
	"github.com/gigurra/soundpad/cmd/sounds"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "soundpad",
		Short:   "A terminal soundboard",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			board.Cmd(),
			play.Cmd(),
			sounds.Cmd(),
			export.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
