package main

import (
	"errors"
	"fmt"
	"log/slog"

	commentfmt "github.com/alnah/go-commentfmt"
	"github.com/alnah/go-commentfmt/internal/config"
	"github.com/alnah/go-commentfmt/internal/hints"
	"github.com/alnah/go-commentfmt/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// app bundles what every command needs after flag parsing.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	theme     commentfmt.Theme
	formatter *commentfmt.Formatter
}

// newApp loads configuration (flag, then COMMENTFMT_CONFIG), applies
// environment overrides and builds the logger, theme and formatter.
func newApp(common *commonFlags, env *Environment) (*app, error) {
	logger, err := newLogger(common, env)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(common.config, env)
	if err != nil {
		return nil, err
	}

	theme, err := buildTheme(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForTheme())
	}

	opts := []commentfmt.Option{commentfmt.WithTheme(theme)}
	if glyph := cfg.Preview.EmptySuperscript; glyph != "" {
		opts = append(opts, commentfmt.WithEmptySuperscript(glyph))
	}
	if ttl := cfg.CacheTTL(); ttl > 0 {
		opts = append(opts, commentfmt.WithPreviewCache(commentfmt.NewPreviewCache(ttl)))
	}

	logger.Debug("config_loaded", "theme", cfg.Theme.Preset, "cache_ttl", cfg.CacheTTL())
	return &app{
		cfg:       cfg,
		logger:    logger,
		theme:     theme,
		formatter: commentfmt.New(opts...),
	}, nil
}

// newLogger builds the stderr logger: errors only with --quiet, debug with
// --verbose, warnings otherwise.
func newLogger(common *commonFlags, env *Environment) (*slog.Logger, error) {
	format, err := logging.ParseFormat(common.logFormat)
	if err != nil {
		return nil, err
	}
	level := logging.LevelWarn
	switch {
	case common.quiet:
		level = logging.LevelError
	case common.verbose:
		level = logging.LevelDebug
	}
	return logging.New(env.Stderr, level, format), nil
}

// loadConfig resolves the config file. Without --config or
// COMMENTFMT_CONFIG the built-in defaults are used.
func loadConfig(nameOrPath string, env *Environment) (*config.Config, error) {
	if nameOrPath == "" {
		nameOrPath = env.Getenv("COMMENTFMT_CONFIG")
	}

	cfg := config.DefaultConfig()
	if nameOrPath != "" {
		var err error
		if cfg, err = config.LoadConfig(nameOrPath); err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	cfg.ApplyEnv(env.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}
	return cfg, nil
}

// buildTheme starts from the preset and applies per-style tag overrides.
func buildTheme(tc config.ThemeConfig) (commentfmt.Theme, error) {
	theme := commentfmt.DefaultTheme()
	if tc.Preset == config.PresetClass {
		prefix := tc.ClassPrefix
		if prefix == "" {
			prefix = config.DefaultClassPrefix
		}
		theme = commentfmt.ClassTheme(prefix)
	}

	override := func(dst *commentfmt.Tag, src config.TagConfig) {
		if !src.IsZero() {
			*dst = commentfmt.Tag{Open: src.Open, Close: src.Close}
		}
	}
	override(&theme.Bold, tc.Bold)
	override(&theme.Italic, tc.Italic)
	override(&theme.Strikethrough, tc.Strikethrough)

	if err := theme.Validate(); err != nil {
		return commentfmt.Theme{}, err
	}
	return theme, nil
}

// renderInput renders content as surface markup, or as plain text when
// plain is set.
func (a *app) renderInput(content string, plain bool) string {
	if plain {
		return commentfmt.RenderText(content, a.theme)
	}
	return a.formatter.Render(content)
}
