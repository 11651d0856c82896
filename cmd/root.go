// Package cmd
/*
	Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nanaki-93/lsr/config"
	"github.com/nanaki-93/lsr/model"
	"github.com/nanaki-93/lsr/render"
	"github.com/nanaki-93/lsr/service"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type rootOptions struct {
	long       bool
	all        bool
	showSize   bool
	dirAsFile  bool
	sort       string
	gitIgnore  bool
	color      string
	width      int
	workers    int
	configPath string
	debug      bool
}

// NewRootCommand creates the lsr command
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lsr [path]",
		Short: "List directory contents",
		Long: `lsr lists a file or the contents of a directory, either as a
terminal-width-aware grid or, with -l, as a detailed table with permissions,
owner, modification time and optionally recursive sizes.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runList(cmd, opts, path)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.long, "long", "l", false, "provide detailed listing")
	flags.BoolVarP(&opts.all, "all", "a", false, "include hidden files in the listing")
	flags.BoolVarP(&opts.showSize, "show-size", "s", false, "with -l, show sizes of files & directories (may be time consuming)")
	flags.BoolVarP(&opts.dirAsFile, "show-dir-as-file", "d", false, "show directory as a file, do not list the contents of it")
	flags.StringVarP(&opts.sort, "sort", "S", "name", "with -l, sort the output by name, size or time")
	flags.BoolVar(&opts.gitIgnore, "git-ignore", false, "hide entries matched by the directory's .gitignore")
	flags.StringVar(&opts.color, "color", "auto", "colorize output: auto, always or never")
	flags.IntVar(&opts.width, "width", 0, "line width to lay out the grid for (0 = detect terminal)")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent metadata lookups (0 = number of CPUs)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $LSR_CONFIG or <user config dir>/lsr/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions, path string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg, opts.debug)
	if err != nil {
		return err
	}

	field, err := model.ParseSortField(cfg.Sort)
	if err != nil {
		return err
	}
	mode, err := render.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	scanner := service.NewScanner(logger)
	entries, err := scanner.Scan(cmd.Context(), absPath, service.ScanOptions{
		ShowHidden: cfg.All,
		Flatten:    opts.dirAsFile,
		Detail:     opts.long,
		Size:       opts.showSize,
		GitIgnore:  cfg.GitIgnore,
		Workers:    cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", absPath, err)
	}

	service.Sort(entries, field, opts.long)
	logger.Debug("listing ready", "path", absPath, "entries", len(entries), "sort", field)

	out := cmd.OutOrStdout()
	scheme := render.NewScheme(mode)
	if opts.long {
		return render.RenderDetailed(out, entries, opts.showSize, scheme)
	}

	names := make([]string, len(entries))
	classes := make([]model.ColorClass, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		classes[i] = e.Color
	}
	lineWidth := render.LineWidth(terminalWidth(out, opts.width, cfg.FallbackWidth), cfg.WidthMargin)
	grid := render.Layout(names, lineWidth)
	logger.Debug("grid layout", "width", lineWidth, "rows", grid.Stride, "columns", grid.Columns())

	return render.RenderGrid(out, grid, names, classes, scheme)
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	var (
		sort      *string
		all       *bool
		gitIgnore *bool
		color     *string
		workers   *int
	)
	if flags.Changed("sort") {
		sort = &opts.sort
	}
	if flags.Changed("all") {
		all = &opts.all
	}
	if flags.Changed("git-ignore") {
		gitIgnore = &opts.gitIgnore
	}
	if flags.Changed("color") {
		color = &opts.color
	}
	if flags.Changed("workers") {
		workers = &opts.workers
	}
	cfg.MergeWithFlags(sort, all, gitIgnore, color, workers)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(out io.Writer, cfg *config.Config, debug bool) (service.Logger, error) {
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	parsed, err := service.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return service.NewLogger(out, parsed), nil
}

// terminalWidth prefers an explicit width, then the terminal size of out.
func terminalWidth(out io.Writer, explicit, fallback int) int {
	if explicit > 0 {
		return explicit
	}
	if f, ok := out.(*os.File); ok {
		return render.TerminalWidth(f, fallback)
	}
	return fallback
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
