package utils

import (
	"fmt"
	"math"
	"os"
	"starfield/world"

	"github.com/pelletier/go-toml/v2"
)

type PlayerConfig struct {
	Speed    float64 `toml:"speed"`
	FireRate float64 `toml:"fire_rate"`
}

type ShotConfig struct {
	Speed float64 `toml:"speed"`
}

type WaveConfig struct {
	Size      int     `toml:"size"`
	Rate      float64 `toml:"rate"`
	ShipSpeed float64 `toml:"ship_speed"`
}

type ResolutionConfig struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

type UIConfig struct {
	Resolution ResolutionConfig `toml:"resolution"`
	Title      string           `toml:"title"`
}

type AssetsConfig struct {
	// Dir overrides the embedded images with files on disk.
	Dir string `toml:"dir"`
}

type TelemetryConfig struct {
	// Address enables the snapshot feed, e.g. "localhost:4243".
	Address string `toml:"address"`
}

type MathConfig struct {
	Float64EqualityThreshold float64 `toml:"float64_equality_threshold"`
}

type Config struct {
	Player    PlayerConfig    `toml:"player"`
	Shot      ShotConfig      `toml:"shot"`
	Wave      WaveConfig      `toml:"wave"`
	UI        UIConfig        `toml:"ui"`
	Assets    AssetsConfig    `toml:"assets"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Math      MathConfig      `toml:"math"`
}

func DefaultConfig() *Config {
	t := world.DefaultTuning()
	return &Config{
		Player: PlayerConfig{
			Speed:    t.PlayerSpeed,
			FireRate: t.FireRate,
		},
		Shot: ShotConfig{
			Speed: t.ShotSpeed,
		},
		Wave: WaveConfig{
			Size:      t.WaveSize,
			Rate:      t.SpawnRate,
			ShipSpeed: t.ShipSpeed,
		},
		UI: UIConfig{
			Resolution: ResolutionConfig{X: int(t.Width), Y: int(t.Height)},
			Title:      "Starfield",
		},
		Math: MathConfig{
			Float64EqualityThreshold: 1e-9,
		},
	}
}

// ReadTOML decodes fileName over the defaults, so keys missing from the file
// keep their default value.
func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	switch {
	case c.UI.Resolution.X <= 0 || c.UI.Resolution.Y <= 0:
		return fmt.Errorf("invalid resolution %dx%d", c.UI.Resolution.X, c.UI.Resolution.Y)
	case float64(c.UI.Resolution.X) <= world.PlayerWidth || float64(c.UI.Resolution.X) < world.ShipWidth:
		return fmt.Errorf("resolution width %d leaves the player no room to move", c.UI.Resolution.X)
	case c.Player.FireRate < 0 || c.Wave.Rate < 0:
		return fmt.Errorf("rates must not be negative")
	case c.Wave.Size < 0:
		return fmt.Errorf("wave size must not be negative")
	}
	return nil
}

func (c *Config) Tuning() world.Tuning {
	return world.Tuning{
		Width:       float64(c.UI.Resolution.X),
		Height:      float64(c.UI.Resolution.Y),
		PlayerSpeed: c.Player.Speed,
		FireRate:    c.Player.FireRate,
		ShotSpeed:   c.Shot.Speed,
		ShipSpeed:   c.Wave.ShipSpeed,
		SpawnRate:   c.Wave.Rate,
		WaveSize:    c.Wave.Size,
	}
}

func AlmostEqual(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}
