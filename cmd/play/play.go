package play

import (
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/soundpad/cmd/common"
	"github.com/gigurra/soundpad/cmd/soundcache"
	"github.com/gigurra/soundpad/cmd/soundcache/beepaudio"
	"github.com/spf13/cobra"
)

type Params struct {
	Pad     int     `pos:"true" required:"true" help:"Pad number to play (resolves sound_<pad>.<ext>)."`
	Dir     string  `short:"d" optional:"true" help:"Directory containing the sound files. Defaults to $XDG_DATA_HOME/soundpad."`
	Ext     string  `short:"e" optional:"true" help:"Audio file extension (mp3 or wav)." default:"mp3"`
	Volume  float64 `short:"v" optional:"true" help:"Playback volume (0.0-1.0)." default:"1.0"`
	Timeout int     `optional:"true" help:"Maximum seconds to wait for the clip to finish." default:"300"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play <pad>",
		Short:       "Play a single pad and exit when the clip ends",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := runPlay(params); err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runPlay(params *Params) error {
	if !beepaudio.AudioAvailable {
		return fmt.Errorf("audio playback is not available in this build")
	}

	dir := params.Dir
	if dir == "" {
		dir = common.SoundsDir()
	}

	cache := soundcache.New(
		soundcache.DirLocator{Root: dir},
		beepaudio.NewFactory(),
		soundcache.Config{Ext: params.Ext},
	)

	cache.SetVolume(params.Volume)
	cache.Play(params.Pad)

	if cache.State().MostRecent != params.Pad {
		return fmt.Errorf("no playable sound for pad %d in %s", params.Pad, dir)
	}

	// Wait out the clip. Playback runs on the audio device; the cache
	// only reports whether the pad is still producing sound.
	deadline := time.Now().Add(time.Duration(params.Timeout) * time.Second)
	for cache.Playing(params.Pad) && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	return nil
}
