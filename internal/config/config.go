package config

import (
	"fmt"
	"os"
	"path/filepath"

	"texwire/pkg/types"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines the texture filename schema, the shader node types the
// assembler creates, the texture-kind filter, and watch mode parameters.
type Config struct {
	Naming struct {
		Prefix     string   `yaml:"prefix"`     // Filename prefix stripped before parsing (e.g. "Mesh_")
		Suffix     string   `yaml:"suffix"`     // Suffix token removed wherever it occurs (e.g. "_mat")
		Extensions []string `yaml:"extensions"` // Accepted image extensions, matched case-insensitively
	} `yaml:"naming"`
	Shader struct {
		NodeType      string `yaml:"node_type"`       // Shader node type created per material
		GroupPrefix   string `yaml:"group_prefix"`    // Name prefix for the shading group node
		FileNodeType  string `yaml:"file_node_type"`  // Texture sampling node type
		PlaceNodeType string `yaml:"place_node_type"` // 2D coordinate mapping node type
		RawColorSpace string `yaml:"raw_color_space"` // Colorspace name for non-color textures
	} `yaml:"shader"`
	Filter struct {
		Disabled []string `yaml:"disabled"` // Texture kinds excluded from builds on top of the permanent exclusions
	} `yaml:"filter"`
	Output struct {
		Script string `yaml:"script"` // Path of the emitted scene script
	} `yaml:"output"`
	Settings struct {
		DryRun bool `yaml:"dry_run"` // If true, print planned operations instead of emitting
		Debug  bool `yaml:"debug"`   // Enable debug logging
	} `yaml:"settings"`
	WatchMode struct {
		Enabled     bool `yaml:"enabled"`      // Enable watch mode
		QuietPeriod int  `yaml:"quiet_period"` // Seconds of quiet before a rescan fires
		AutoBuild   bool `yaml:"auto_build"`   // Rebuild the script after every rescan
	} `yaml:"watch_mode"`
}

// LoadConfig loads configuration from the default location
// (~/.config/texwire/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "texwire", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Naming.Prefix != "" {
		cfg.Naming.Prefix = tempCfg.Naming.Prefix
	}
	if tempCfg.Naming.Suffix != "" {
		cfg.Naming.Suffix = tempCfg.Naming.Suffix
	}
	if len(tempCfg.Naming.Extensions) > 0 {
		cfg.Naming.Extensions = tempCfg.Naming.Extensions
	}
	if tempCfg.Shader.NodeType != "" {
		cfg.Shader.NodeType = tempCfg.Shader.NodeType
	}
	if tempCfg.Shader.GroupPrefix != "" {
		cfg.Shader.GroupPrefix = tempCfg.Shader.GroupPrefix
	}
	if tempCfg.Shader.FileNodeType != "" {
		cfg.Shader.FileNodeType = tempCfg.Shader.FileNodeType
	}
	if tempCfg.Shader.PlaceNodeType != "" {
		cfg.Shader.PlaceNodeType = tempCfg.Shader.PlaceNodeType
	}
	if tempCfg.Shader.RawColorSpace != "" {
		cfg.Shader.RawColorSpace = tempCfg.Shader.RawColorSpace
	}
	if len(tempCfg.Filter.Disabled) > 0 {
		cfg.Filter.Disabled = tempCfg.Filter.Disabled
	}
	if tempCfg.Output.Script != "" {
		cfg.Output.Script = tempCfg.Output.Script
	}

	cfg.Settings.DryRun = tempCfg.Settings.DryRun
	cfg.Settings.Debug = tempCfg.Settings.Debug

	cfg.WatchMode.Enabled = tempCfg.WatchMode.Enabled
	if tempCfg.WatchMode.QuietPeriod > 0 {
		cfg.WatchMode.QuietPeriod = tempCfg.WatchMode.QuietPeriod
	}
	cfg.WatchMode.AutoBuild = tempCfg.WatchMode.AutoBuild

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration: the Substance
// Painter export schema wired to Redshift node types.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Naming.Prefix = "Mesh_"
	cfg.Naming.Suffix = "_mat"
	cfg.Naming.Extensions = []string{"png", "bmp", "jpeg", "jpg"}

	cfg.Shader.NodeType = "RedshiftMaterial"
	cfg.Shader.GroupPrefix = "rsMaterial_"
	cfg.Shader.FileNodeType = "file"
	cfg.Shader.PlaceNodeType = "place2dTexture"
	cfg.Shader.RawColorSpace = "Raw"

	cfg.Filter.Disabled = []string{}

	cfg.Output.Script = "materials.mel"

	cfg.Settings.DryRun = false
	cfg.Settings.Debug = false

	cfg.WatchMode.Enabled = false
	cfg.WatchMode.QuietPeriod = 2
	cfg.WatchMode.AutoBuild = false

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if len(c.Naming.Extensions) == 0 {
		return fmt.Errorf("at least one image extension is required")
	}
	for i, ext := range c.Naming.Extensions {
		if ext == "" {
			return fmt.Errorf("extension %d: empty extension", i)
		}
	}

	if c.Shader.NodeType == "" {
		return fmt.Errorf("shader node type is required")
	}
	if c.Shader.FileNodeType == "" {
		return fmt.Errorf("file node type is required")
	}
	if c.Shader.PlaceNodeType == "" {
		return fmt.Errorf("place node type is required")
	}

	// Disabled kinds must name declared texture kinds
	for _, name := range c.Filter.Disabled {
		if _, ok := types.ParseTextureKind(name); !ok {
			return fmt.Errorf("unknown texture kind in filter: %s", name)
		}
	}

	if c.WatchMode.Enabled && c.WatchMode.QuietPeriod < 1 {
		return fmt.Errorf("watch quiet period must be >= 1 second")
	}

	return nil
}

// KindFilter builds the active texture-kind filter: every implemented
// kind, minus those the config disables.
func (c *Config) KindFilter() types.KindFilter {
	f := types.NewKindFilter()
	for _, name := range c.Filter.Disabled {
		if k, ok := types.ParseTextureKind(name); ok {
			f.Disable(k)
		}
	}
	return f
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Settings.DryRun = true
	cfg.Output.Script = "test.mel"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
