package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"rgnmap/internal/config"
	"rgnmap/internal/dataset"
	"rgnmap/internal/logging"
	"rgnmap/internal/rgn"
	"rgnmap/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := config.Flags()
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: rgnmap [flags] [dataset]\n\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	// the TUI owns the terminal, so logs only go to stderr in report mode
	logFile := cfg.Log.File
	if cfg.Report {
		logFile = ""
	}
	logger, closer, err := logging.Setup(logFile, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return 1
	}
	defer closer.Close()

	net, status, err := load(cfg.Dataset.Path, logger)
	if cfg.Report {
		if err != nil {
			logger.Error("load dataset", "path", cfg.Dataset.Path, "err", err)
			return 1
		}
		return printReport(os.Stdout, net)
	}

	m := tui.New(net, tui.Options{
		RadiusKm: cfg.Query.RadiusKm,
		Zoom:     cfg.TUI.Zoom,
		Source:   filepath.Base(cfg.Dataset.Path),
		Status:   status,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		logger.Error("tui", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// load reads and parses the dataset. An empty dataset is not an error; any
// other failure yields an empty network and an error status for the viewer.
func load(path string, logger *slog.Logger) (*rgn.Network, string, error) {
	records, err := dataset.Load(path)
	if err != nil {
		logger.Error("load dataset", "path", path, "err", err)
		return rgn.New(rgn.WithLogger(logger)), "load error: " + err.Error(), err
	}
	net, err := rgn.Parse(records, rgn.WithLogger(logger))
	switch {
	case errors.Is(err, rgn.ErrEmptyDataset):
		return net, "Empty file", nil
	case err != nil:
		logger.Error("parse dataset", "path", path, "err", err)
		return rgn.New(rgn.WithLogger(logger)), "parse error: " + err.Error(), err
	}
	return net, fmt.Sprintf("loaded %d VGs from %s", net.Len(), filepath.Base(path)), nil
}
