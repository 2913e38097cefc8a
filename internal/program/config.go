package program

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the static program data set. It is loaded once at startup and
// never mutated afterwards; callers copy slices before changing them.
type Config struct {
	Phases      []Phase               `yaml:"phases"`
	Warmups     map[Category][]Drill  `yaml:"warmups"`
	Cooldowns   map[Category][]Drill  `yaml:"cooldowns"`
	HomeSets    map[string][]Exercise `yaml:"home_sets"`
	DefaultHome string                `yaml:"default_home_set"`
	Rehab       string                `yaml:"rehab_set"`
	Course      Course                `yaml:"course"`
	Library     Library               `yaml:"library"`
	Supplements []SupplementSlot      `yaml:"supplements"`
}

// Default returns the built-in program data.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Load reads program data from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("program file %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse program yaml: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("program validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, ok := c.Warmups[CategoryMobility]; !ok {
		return fmt.Errorf("warmups.Mobility is required")
	}
	if _, ok := c.Cooldowns[CategoryMobility]; !ok {
		return fmt.Errorf("cooldowns.Mobility is required")
	}
	if c.DefaultHome == "" {
		return fmt.Errorf("default_home_set is required")
	}
	if _, ok := c.HomeSets[c.DefaultHome]; !ok {
		return fmt.Errorf("default_home_set %q not found in home_sets", c.DefaultHome)
	}
	if c.Rehab != "" {
		if _, ok := c.HomeSets[c.Rehab]; !ok {
			return fmt.Errorf("rehab_set %q not found in home_sets", c.Rehab)
		}
	}
	seen := make(map[string]bool)
	for _, p := range c.Phases {
		if p.Name == "" {
			return fmt.Errorf("phase without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate phase %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// PhaseNames returns phase names in file order.
func (c *Config) PhaseNames() []string {
	names := make([]string, 0, len(c.Phases))
	for _, p := range c.Phases {
		names = append(names, p.Name)
	}
	return names
}

func (c *Config) Phase(name string) (Phase, bool) {
	for _, p := range c.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return Phase{}, false
}

func (c *Config) Routine(phase string) (Routine, bool) {
	p, ok := c.Phase(phase)
	if !ok {
		return nil, false
	}
	return p.Routine, true
}

func (c *Config) Warmup(cat Category) ([]Drill, bool) {
	d, ok := c.Warmups[cat]
	return d, ok
}

func (c *Config) Cooldown(cat Category) ([]Drill, bool) {
	d, ok := c.Cooldowns[cat]
	return d, ok
}

func (c *Config) HomeSet(key string) ([]Exercise, bool) {
	if key == "" {
		return nil, false
	}
	ex, ok := c.HomeSets[key]
	return ex, ok
}

func (c *Config) DefaultHomeSet() []Exercise {
	return c.HomeSets[c.DefaultHome]
}

// RehabSet falls back to the default home set when no rehab set is named.
func (c *Config) RehabSet() []Exercise {
	if ex, ok := c.HomeSet(c.Rehab); ok {
		return ex
	}
	return c.DefaultHomeSet()
}

func (c *Config) CourseSession(week int, day string) (DayPlan, bool) {
	b, ok := c.Course.Block(week)
	if !ok {
		return DayPlan{}, false
	}
	p, ok := b.Schedule[day]
	return p, ok
}

// Library is the exercise reference table keyed by exercise name.
type Library map[string]LibraryEntry

// Search returns entries whose name contains query, ignoring case, sorted by
// name. An empty query returns everything.
func (l Library) Search(query string) []LibraryEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []LibraryEntry
	for name, e := range l {
		if q != "" && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		e.Name = name
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
