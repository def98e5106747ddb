package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/convolve"
	"github.com/gogpu/convolve/internal/config"
)

// errReported marks failures whose message was already shown to the user.
var errReported = errors.New("reported")

type flags struct {
	configPath  string
	sharpen     string
	output      string
	workers     int
	bandHeight  int
	labels      bool
	jpegQuality int
	verbose     bool
	writeConfig bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "convolve [image]",
		Short: "Sharpen or blur an image and save a side-by-side comparison",
		Long: `convolve applies a fixed sharpen or blur kernel to an image at radius 1
and radius 2 and writes [original | radius 1 | radius 2] as one image.

Without an image argument or --sharpen flag the missing values are asked
for interactively.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "convolve.yaml", "YAML config file, ignored if missing")
	fs.StringVarP(&f.sharpen, "sharpen", "s", "", "'t' to sharpen, 'f' to blur (asked if not set)")
	fs.StringVarP(&f.output, "out", "o", config.DefaultOutput, "output image; the extension picks the format")
	fs.IntVarP(&f.workers, "workers", "w", 1, "convolution goroutines, 0 for one per CPU")
	fs.IntVar(&f.bandHeight, "band-height", 0, "rows per parallel job, 0 for automatic")
	fs.BoolVar(&f.labels, "labels", false, "caption each panel")
	fs.IntVar(&f.jpegQuality, "jpeg-quality", 0, "JPEG quality 1-100 for .jpg output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVar(&f.writeConfig, "write-config", false, "save the effective settings to --config and exit")

	return cmd
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("out") {
		cfg.Output = f.output
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("band-height") {
		cfg.BandHeight = f.bandHeight
	}
	if fs.Changed("labels") {
		cfg.Labels = f.labels
	}
	if fs.Changed("jpeg-quality") {
		cfg.JPEGQuality = f.jpegQuality
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return errors.Join(errReported, err)
	}

	if f.writeConfig {
		if err := cfg.Save(f.configPath); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return errors.Join(errReported, err)
		}
		fmt.Fprintf(out, "Wrote config to %s\n", f.configPath)
		return nil
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	convolve.SetLogger(logger)
	defer convolve.SetLogger(nil)

	p := newPrompter(cmd.InOrStdin(), out)

	var path string
	if len(args) == 1 {
		path = args[0]
	} else if path, err = p.ask(pathQuestion); err != nil {
		return err
	}

	selector := f.sharpen
	if !cmd.Flags().Changed("sharpen") {
		if selector, err = p.ask(modeQuestion); err != nil {
			return err
		}
	}

	mode, err := convolve.ParseMode(selector)
	if err != nil {
		fmt.Fprintln(out, "Please enter either 't' or 'f'")
		return errors.Join(errReported, err)
	}

	src, err := convolve.Load(path)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		fmt.Fprintf(out, "Could not process image %s\n", path)
		return errors.Join(errReported, err)
	}
	logger.Debug("image loaded", "path", path, "width", src.Width(), "height", src.Height())

	var opts []convolve.CompareOption
	if cfg.Workers != 1 {
		e := convolve.NewEngine(
			convolve.WithWorkers(cfg.Workers),
			convolve.WithBandHeight(cfg.BandHeight),
		)
		defer e.Close()
		opts = append(opts, convolve.WithEngine(e))
	}
	if cfg.Labels {
		opts = append(opts, convolve.WithLabels(true))
	}

	result, err := convolve.Compare(cmd.Context(), src, mode, opts...)
	if err != nil {
		return err
	}

	if err := result.Save(cfg.Output, convolve.WithJPEGQuality(cfg.JPEGQuality)); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return errors.Join(errReported, err)
	}

	logger.Info("comparison saved", "path", cfg.Output, "mode", mode.String())
	return nil
}
