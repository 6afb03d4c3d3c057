package sim

import (
	"log"
	"strconv"
	"time"

	"cellsim/internal/core"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// Config controls the engine. Width and Height are fixed for the engine's
// lifetime.
type Config struct {
	Width  int
	Height int
	Seed   uint32
	TPS    int

	SeasonTicks int
	Rule        string
	Gravity     float64
	GravityMin  float64
	GravityMax  float64

	// Bands is the number of row bands updated concurrently; 0 uses GOMAXPROCS.
	Bands int
	// MaxCatchUp caps ticks per Advance; 0 keeps catch-up unbounded.
	MaxCatchUp int

	AggregateEvery   time.Duration
	AggregateChannel core.Channel

	Body bool

	Logger *log.Logger
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            500,
		Height:           500,
		Seed:             42,
		TPS:              60,
		SeasonTicks:      core.DefaultSeasonTicks,
		Rule:             core.DefaultRuleName,
		Gravity:          0,
		GravityMin:       -1,
		GravityMax:       1,
		AggregateEvery:   time.Second,
		AggregateChannel: core.Temperature,
		Body:             true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Seed = uint32(parsed)
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["season_ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SeasonTicks = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Gravity = parsed
		}
	}
	if v, ok := cfg["bands"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Bands = parsed
		}
	}
	if v, ok := cfg["max_catchup"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxCatchUp = parsed
		}
	}
	if v, ok := cfg["aggregate_channel"]; ok {
		if ch, ok := core.ParseChannel(v); ok {
			c.AggregateChannel = ch
		}
	}
	if v, ok := cfg["body"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Body = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided flaggy subcommand or parser.
func (c *Config) Bind(sc *flaggy.Subcommand) {
	sc.Int(&c.Width, "x", "width", "grid width in cells")
	sc.Int(&c.Height, "y", "height", "grid height in cells")
	sc.UInt32(&c.Seed, "s", "seed", "seed for the initial grid")
	sc.Int(&c.TPS, "t", "tps", "simulation ticks per second")
	sc.Int(&c.SeasonTicks, "", "season-ticks", "ticks per season (four seasons per year)")
	sc.String(&c.Rule, "r", "rule", "update rule to apply")
	sc.Float64(&c.Gravity, "g", "gravity", "initial gravity control value")
	sc.Int(&c.Bands, "", "bands", "row bands updated concurrently (0 = GOMAXPROCS)")
	sc.Int(&c.MaxCatchUp, "", "max-catchup", "cap on ticks per frame (0 = unbounded)")
	sc.Bool(&c.Body, "", "body", "place the steerable foreign body on the grid")
}

// Validate reports configuration errors that must abort startup.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Width > core.MaxSide || c.Height > core.MaxSide {
		return errors.Errorf("grid size %dx%d exceeds the %d cell texture limit", c.Width, c.Height, core.MaxSide)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps %d must be positive", c.TPS)
	}
	if c.SeasonTicks <= 0 {
		return errors.Errorf("season length %d must be positive", c.SeasonTicks)
	}
	if _, ok := core.Rules()[c.Rule]; !ok {
		return errors.Errorf("unknown rule %q (available: %v)", c.Rule, core.RuleNames())
	}
	if c.GravityMin > c.GravityMax {
		return errors.Errorf("gravity range [%g, %g] is empty", c.GravityMin, c.GravityMax)
	}
	if c.AggregateChannel < 0 || int(c.AggregateChannel) >= core.NumChannels {
		return errors.Errorf("aggregate channel %d out of range", c.AggregateChannel)
	}
	return nil
}

func (c Config) seasons() [4]int {
	return [4]int{c.SeasonTicks, c.SeasonTicks, c.SeasonTicks, c.SeasonTicks}
}
