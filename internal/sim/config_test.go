package sim

import (
	"testing"

	"cellsim/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                 "64",
		"h":                 "-3",
		"seed":              "4294967295",
		"rule":              "frozen",
		"gravity":           "0.25",
		"max_catchup":       "12",
		"aggregate_channel": "magic",
		"body":              "false",
	})
	def := DefaultConfig()
	if c.Width != 64 || c.Height != def.Height {
		t.Fatalf("size %dx%d", c.Width, c.Height)
	}
	if c.Seed != 4294967295 || c.Rule != "frozen" || c.Gravity != 0.25 {
		t.Fatalf("config %+v", c)
	}
	if c.MaxCatchUp != 12 || c.AggregateChannel != core.Magic || c.Body {
		t.Fatalf("config %+v", c)
	}
}

func TestFromMapNil(t *testing.T) {
	if c := FromMap(nil); c != DefaultConfig() {
		t.Fatalf("nil map changed defaults: %+v", c)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}
