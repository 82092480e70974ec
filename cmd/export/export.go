package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/soundpad/cmd/common"
	"github.com/gigurra/soundpad/cmd/soundcache"
	"github.com/spf13/cobra"
)

type Params struct {
	Pad int    `pos:"true" required:"true" help:"Pad number to export (resolves sound_<pad>.<ext>)."`
	Out string `short:"o" optional:"true" help:"Destination file or directory." default:"."`
	Dir string `short:"d" optional:"true" help:"Directory containing the sound files. Defaults to $XDG_DATA_HOME/soundpad."`
	Ext string `short:"e" optional:"true" help:"Audio file extension (mp3 or wav)." default:"mp3"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "export <pad>",
		Short:       "Copy a pad's sound file out of the board",
		Long:        "Resolve a pad's sound file and copy it to a destination, e.g. to share it or use it elsewhere.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			dest, err := runExport(params)
			if err != nil {
				fmt.Fprintf(os.Stderr, "export: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(dest)
		},
	}.ToCobra()
}

func runExport(params *Params) (string, error) {
	dir := params.Dir
	if dir == "" {
		dir = common.SoundsDir()
	}

	cache := soundcache.New(
		soundcache.DirLocator{Root: dir},
		soundcache.NopAudio{},
		soundcache.Config{Ext: params.Ext},
	)

	cache.Load(params.Pad)
	src, ok := cache.Location(params.Pad)
	if !ok {
		return "", fmt.Errorf("no sound file for pad %d in %s", params.Pad, dir)
	}

	dest := params.Out
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		dest = filepath.Join(dest, filepath.Base(src))
	}

	if err := copyFile(src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
