// Package main is the entry point for the glide smooth scrolling viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/glide/internal/config"
	"github.com/dshills/glide/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("glide %s (%s)\n", version, commit)
		return 0
	}

	cfg := config.New()
	configPath := opts.configPath
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	if err := cfg.LoadFile(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.NullLogger
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.Logging().Level),
			Output: f,
			Prefix: "glide",
		})
	}

	lines, title, err := loadContent(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	scrollCfg := cfg.Scroll()
	if opts.duration > 0 {
		scrollCfg.Duration = opts.duration
	}
	if opts.easing != "" {
		scrollCfg.Easing = opts.easing
	}

	app, err := newApp(lines, title, scrollCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.close()

	if err := app.loop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath  string
	logPath     string
	easing      string
	duration    time.Duration
	file        string
	showVersion bool
}

func parseFlags() options {
	var opts options
	var durationSecs float64

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.logPath, "log", "", "Write diagnostics to this file")
	flag.StringVar(&opts.easing, "easing", "", "Easing curve: linear, quadratic, cubic, sine")
	flag.Float64Var(&durationSecs, "duration", 0, "Animation duration in seconds")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version and exit")
	flag.Usage = usage
	flag.Parse()

	opts.duration = time.Duration(durationSecs * float64(time.Second))
	if flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}
	return opts
}

func usage() {
	fmt.Fprintf(os.Stderr, `glide - smooth scrolling file viewer

Usage: glide [options] [file]

Keys:
  PgDn, Ctrl-F   scroll one page down
  PgUp, Ctrl-B   scroll one page up
  Ctrl-D         scroll half a page down
  Ctrl-U         scroll half a page up
  j, k           move one line
  g, G           jump to start / end
  q, Esc         quit

Options:
`)
	flag.PrintDefaults()
}

// defaultConfigPath returns ~/.config/glide/config.json.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "glide", "config.json")
}

// loadContent reads the file to display, or generates sample content when
// no file was given.
func loadContent(path string) ([]string, string, error) {
	if path == "" {
		lines := make([]string, 500)
		for i := range lines {
			lines[i] = fmt.Sprintf("%4d  %s", i+1, strings.Repeat("the quick brown fox ", 1+i%3))
		}
		return lines, "(sample)", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	content := strings.ReplaceAll(string(data), "\t", "    ")
	return strings.Split(content, "\n"), filepath.Base(path), nil
}
