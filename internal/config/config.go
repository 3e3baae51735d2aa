package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the project configuration file looked up in the
// working directory when no --config flag is given.
const DefaultFileName = "wanderdeck.toml"

// Config represents the project configuration
type Config struct {
	InputFolder    string `toml:"input_folder"`
	OutputFolder   string `toml:"output_folder"`
	OutputFileName string `toml:"output_filename"`

	// Grid layout of the paginated PDF.
	GridRows    int     `toml:"grid_rows"`
	GridColumns int     `toml:"grid_columns"`
	GapMM       float64 `toml:"gap_mm"`

	// Width in pixels of standalone card rasters; height follows the
	// card aspect ratio.
	CardImageWidth int `toml:"card_image_width"`

	// Output size in pixels of continent outline rasters.
	ContinentSize int `toml:"continent_size"`

	// Continent identifier to hex fill color. The "default" entry is
	// used for continents absent from the table.
	ContinentColors map[string]string `toml:"continent_colors"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputFolder:    "input",
		OutputFolder:   "output",
		OutputFileName: "cards.pdf",
		GridRows:       3,
		GridColumns:    3,
		GapMM:          1,
		CardImageWidth: 1130,
		ContinentSize:  512,
		ContinentColors: map[string]string{
			"europe":   "#99CCFF",
			"asia":     "#FFFF99",
			"americas": "#FF9999",
			"africa":   "#CCCCCC",
			"oceania":  "#CCCCCC",
			"default":  "#CCCCCC",
		},
	}
}

// Load reads the config file at path, creating it with defaults when it
// does not exist yet.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createDefault writes the default config to path and returns it.
func createDefault(path string) (*Config, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating config directory: %v", err)
		}
	}

	cfg := Default()

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return cfg, nil
}

func (c *Config) check() error {
	if c.GridRows < 1 || c.GridColumns < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.GridRows, c.GridColumns)
	}
	if c.CardImageWidth < 1 {
		return fmt.Errorf("card_image_width must be positive, got %d", c.CardImageWidth)
	}
	if c.ContinentSize < 1 {
		return fmt.Errorf("continent_size must be positive, got %d", c.ContinentSize)
	}
	return nil
}

// DeckPath returns the path of the deck file under the input folder.
func (c *Config) DeckPath() string {
	return filepath.Join(c.InputFolder, "cards.toml")
}

// OutputPath returns the path of the paginated PDF.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputFolder, c.OutputFileName)
}

// CardsDir returns the directory that receives standalone card rasters.
func (c *Config) CardsDir() string {
	return filepath.Join(c.OutputFolder, "cards")
}

// ContinentsDir returns the directory that receives continent outlines.
func (c *Config) ContinentsDir() string {
	return filepath.Join(c.OutputFolder, "continents")
}
