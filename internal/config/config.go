package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/antopolskiy/cardboard-md/internal/board"
	"github.com/antopolskiy/cardboard-md/internal/clierr"
)

const fileMode = 0o600

// Board kinds.
const (
	KindDate = "date"
	KindTag  = "tag"
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("no board config found (run 'cardboard-md init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config is the persisted board-set configuration.
type Config struct {
	Version  int     `yaml:"version"`
	NotesDir string  `yaml:"notes_dir"`
	Boards   []Board `yaml:"boards"`

	// dir is the absolute path to the directory holding the config file
	// (not serialized).
	dir string `yaml:"-"`
}

// Board is the serialized form of one board configuration. Kind decides
// which fields apply.
type Board struct {
	Kind  string `yaml:"kind"`
	Title string `yaml:"title"`

	// Date boards.
	IncludeUndated   bool `yaml:"include_undated,omitempty"`
	IncludeCompleted bool `yaml:"include_completed,omitempty"`

	// Tag boards.
	Columns         []TagColumn `yaml:"columns,omitempty"`
	IncludeOthers   bool        `yaml:"include_others,omitempty"`
	IncludeUntagged bool        `yaml:"include_untagged,omitempty"`
	CompletedCount  int         `yaml:"completed_count,omitempty"`
}

// TagColumn pairs a tag with its column label.
type TagColumn struct {
	Tag   string `yaml:"tag"`
	Label string `yaml:"label"`
}

// Dir returns the absolute path to the board directory.
func (c *Config) Dir() string {
	return c.dir
}

// NotesPath returns the absolute path to the notes directory.
func (c *Config) NotesPath() string {
	if filepath.IsAbs(c.NotesDir) {
		return c.NotesDir
	}
	return filepath.Join(c.dir, c.NotesDir)
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// SetDir sets the board directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:  CurrentVersion,
		NotesDir: DefaultNotesDir,
		Boards:   append([]Board{}, DefaultBoards...),
	}
}

// BoardConfig converts the serialized form into the engine configuration.
func (b Board) BoardConfig() (board.Config, error) {
	switch b.Kind {
	case KindDate:
		return board.DateConfig{
			BoardTitle:       b.Title,
			IncludeUndated:   b.IncludeUndated,
			IncludeCompleted: b.IncludeCompleted,
		}, nil
	case KindTag:
		cols := make([]board.TagColumn, len(b.Columns))
		for i, tc := range b.Columns {
			label := tc.Label
			if label == "" {
				label = tc.Tag
			}
			cols[i] = board.TagColumn{Tag: tc.Tag, Label: label}
		}
		return board.TagConfig{
			BoardTitle:      b.Title,
			Columns:         cols,
			IncludeOthers:   b.IncludeOthers,
			IncludeUntagged: b.IncludeUntagged,
			CompletedCount:  b.CompletedCount,
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown board kind %q", ErrInvalid, b.Kind)
}

// BoardConfigs converts every configured board, in order.
func (c *Config) BoardConfigs() ([]board.Config, error) {
	out := make([]board.Config, len(c.Boards))
	for i, b := range c.Boards {
		cfg, err := b.BoardConfig()
		if err != nil {
			return nil, err
		}
		out[i] = cfg
	}
	return out, nil
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.NotesDir == "" {
		return fmt.Errorf("%w: notes_dir is required", ErrInvalid)
	}
	if len(c.Boards) == 0 {
		return fmt.Errorf("%w: at least 1 board is required", ErrInvalid)
	}
	for i, b := range c.Boards {
		if b.Kind != KindDate && b.Kind != KindTag {
			return fmt.Errorf("%w: boards[%d] has unknown kind %q", ErrInvalid, i, b.Kind)
		}
		if b.Title == "" {
			return fmt.Errorf("%w: boards[%d] needs a title", ErrInvalid, i)
		}
		if b.Kind == KindTag {
			for j, tc := range b.Columns {
				if tc.Tag == "" {
					return fmt.Errorf("%w: boards[%d].columns[%d] needs a tag", ErrInvalid, i, j)
				}
			}
		}
	}
	return nil
}

// Load reads the config from dir, or when dir is empty, searches from the
// working directory upward for a directory containing the config file.
func Load(dir string) (*Config, error) {
	if dir == "" {
		found, err := findUp()
		if err != nil {
			return nil, err
		}
		dir = found
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(abs, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, clierr.New(clierr.BoardNotFound, ErrNotFound.Error())
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, clierr.Newf(clierr.InvalidConfig, "parsing config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, clierr.Newf(clierr.InvalidConfig, "%v", err)
	}

	cfg.dir = abs
	return &cfg, nil
}

// findUp walks from the working directory toward the root looking for a
// config file.
func findUp() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", clierr.New(clierr.BoardNotFound, ErrNotFound.Error())
		}
		dir = parent
	}
}

// Save writes the config to its directory.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(c.ConfigPath(), data, fileMode); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Init creates a new default config in dir, including the notes directory.
// It fails when a config already exists there.
func Init(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	if _, err := os.Stat(filepath.Join(abs, ConfigFileName)); err == nil {
		return nil, clierr.Newf(clierr.InvalidConfig, "config already exists in %s", abs)
	}

	cfg := NewDefault()
	cfg.dir = abs

	if err := os.MkdirAll(cfg.NotesPath(), 0o750); err != nil {
		return nil, fmt.Errorf("creating notes directory: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}
