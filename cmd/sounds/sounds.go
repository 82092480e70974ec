package sounds

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/soundpad/cmd/common"
	"github.com/gigurra/soundpad/cmd/soundcache"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir  string `short:"d" optional:"true" help:"Directory containing the sound files. Defaults to $XDG_DATA_HOME/soundpad."`
	Pads int    `short:"n" optional:"true" help:"Number of pads to list." default:"10"`
	Ext  string `short:"e" optional:"true" help:"Audio file extension (mp3 or wav)." default:"mp3"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "sounds",
		Aliases:     []string{"ls", "list"},
		Short:       "List the sounds resolvable on the board",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := runSounds(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "sounds: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runSounds(params *Params, stdout io.Writer) error {
	dir := params.Dir
	if dir == "" {
		dir = common.SoundsDir()
	}

	// NopAudio: listing exercises the same resolution chain as
	// playback, without touching an audio device.
	cache := soundcache.New(
		soundcache.DirLocator{Root: dir},
		soundcache.NopAudio{},
		soundcache.Config{Ext: params.Ext},
	)
	cache.LoadAll(params.Pads)

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Pad", "File", "Size"})

	for _, pad := range lo.RangeFrom(1, params.Pads) {
		location, ok := cache.Location(pad)
		if !ok {
			t.AppendRow(table.Row{pad, "(missing)", ""})
			continue
		}
		t.AppendRow(table.Row{pad, location, fileSize(location)})
	}

	t.Render()
	return nil
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "?"
	}
	return fmt.Sprintf("%d B", info.Size())
}
