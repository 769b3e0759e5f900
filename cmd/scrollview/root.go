package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type options struct {
	width, height int
	rows          int
	rowHeight     float64
	config        string
	assets        string
	script        string
	out           string
	verbose       bool

	// override the config file when set
	wheelDivisor int
	thumbWidth   float64
}

const longHelp = `Scrollview builds a scroll container filled with colored rows, replays the input script (screen coordinates, origin at the bottom-left) on a headless window and writes the final frame as a png.

Script commands:
  down X Y [left|middle|right]
  move X Y
  up X Y [left|middle|right]
  wheel X Y DELTA
  key X Y up|down|pageup|pagedown|home|end
  expose`

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "scrollview",
		Short:        "Render a scroll container after replaying an input script",
		Long:         longHelp,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("wheel-divisor") {
				opts.wheelDivisor = 0
			}
			if !cmd.Flags().Changed("thumb-width") {
				opts.thumbWidth = 0
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			return run(cmd.Context(), opts, cmd.OutOrStdout(), logger)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 400, "window width")
	f.IntVar(&opts.height, "height", 300, "window height")
	f.IntVar(&opts.rows, "rows", 20, "number of rows in the container")
	f.Float64Var(&opts.rowHeight, "row-height", 30, "height of each row")
	f.StringVar(&opts.config, "config", "", "scroll options file (toml)")
	f.StringVar(&opts.assets, "assets", "", "textures directory, \"ns:path\" is read from <dir>/ns/path.png")
	f.StringVar(&opts.script, "script", "", "input script file")
	f.StringVarP(&opts.out, "out", "o", "scrollview.png", "output png file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	f.IntVar(&opts.wheelDivisor, "wheel-divisor", 10, "wheel units per pixel of thumb movement")
	f.Float64Var(&opts.thumbWidth, "thumb-width", 15, "scrollbar thumb width")
	return cmd
}

func (opts *options) validate() error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("bad window size: %vx%v", opts.width, opts.height)
	}
	if opts.rows < 0 {
		return fmt.Errorf("bad rows: %v", opts.rows)
	}
	if opts.rowHeight <= 0 {
		return fmt.Errorf("bad row height: %v", opts.rowHeight)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
