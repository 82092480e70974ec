package board

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/gigurra/soundpad/cmd/common"
	"github.com/gigurra/soundpad/cmd/soundcache"
	"github.com/gigurra/soundpad/cmd/soundcache/beepaudio"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir   string `short:"d" optional:"true" help:"Directory containing the sound files. Defaults to $XDG_DATA_HOME/soundpad."`
	Pads  int    `short:"n" optional:"true" help:"Number of pads on the board." default:"10"`
	Ext   string `short:"e" optional:"true" help:"Audio file extension (mp3 or wav)." default:"mp3"`
	Watch bool   `short:"w" optional:"true" help:"Reload the board when files change in the sound directory."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "board",
		Short: "Open the interactive soundboard",
		Long: `Open the interactive soundboard.

Controls:
  1-0, q-p   - Play the pad's sound
  SPACE      - Pause / resume everything
  l          - Toggle looping for the last played sound
  s          - Stop everything
  + / -      - Volume up / down
  ESC        - Quit

Sounds are resolved as sound_<pad>.<ext>, first in the sounds/
subdirectory of the sound directory, then in the directory itself.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := runBoard(params); err != nil {
				fmt.Fprintf(os.Stderr, "board: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runBoard(params *Params) error {
	dir := params.Dir
	if dir == "" {
		dir = common.SoundsDir()
	}

	pads := params.Pads
	if pads < 1 {
		pads = 1
	}
	if pads > len(padKeys) {
		pads = len(padKeys)
	}

	cache := soundcache.New(
		soundcache.DirLocator{Root: dir},
		beepaudio.NewFactory(),
		soundcache.Config{Ext: params.Ext},
	)

	prog := tea.NewProgram(initialModel(cache, pads, dir), tea.WithAltScreen())

	// Forward cache state snapshots into the UI loop.
	go func() {
		for s := range cache.Events() {
			prog.Send(stateMsg(s))
		}
	}()

	if params.Watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		// Watch both lookup locations of the resolution chain. Loading
		// is idempotent, so a rescan only retries missing pads.
		_ = watcher.Add(dir)
		_ = watcher.Add(filepath.Join(dir, "sounds"))

		go func() {
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
						prog.Send(rescanMsg{})
					}
				case _, ok := <-watcher.Errors:
					if !ok {
						return
					}
				}
			}
		}()
	}

	_, err := prog.Run()
	return err
}
