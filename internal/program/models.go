package program

import "gopkg.in/yaml.v3"

// Category is a coarse muscle-group tag used to pick warmups, cooldowns and
// home substitutes.
type Category string

const (
	CategoryLower    Category = "Lower"
	CategoryPush     Category = "Push"
	CategoryPull     Category = "Pull"
	CategoryMobility Category = "Mobility"
)

type SessionType string

const (
	SessionGym      SessionType = "Gym"
	SessionHome     SessionType = "Home"
	SessionRecovery SessionType = "Recovery"
	SessionRehab    SessionType = "Rehab"
)

// noAlternative marks an exercise without a substitute in the data files.
const noAlternative = "-"

type Exercise struct {
	Name  string
	Sets  string
	Tempo string
	Note  string
	Alt   *string // nil when there is no substitute
}

func (e *Exercise) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name  string `yaml:"name"`
		Sets  string `yaml:"sets"`
		Tempo string `yaml:"tempo"`
		Note  string `yaml:"note"`
		Alt   string `yaml:"alt"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	e.Name = raw.Name
	e.Sets = raw.Sets
	e.Tempo = raw.Tempo
	e.Note = raw.Note
	e.Alt = nil
	if raw.Alt != "" && raw.Alt != noAlternative {
		alt := raw.Alt
		e.Alt = &alt
	}
	return nil
}

// Drill is a timed warmup or cooldown item.
type Drill struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"time"`
	Note     string `yaml:"note"`
	Target   string `yaml:"target"`
}

type DayPlan struct {
	Focus     string      `yaml:"focus"`
	Type      SessionType `yaml:"type"`
	Category  Category    `yaml:"category"`
	HomeKey   string      `yaml:"home_map"`
	Exercises []Exercise  `yaml:"exercises"`
	Core      []Exercise  `yaml:"core"`
	Warmup    []Drill     `yaml:"-"`
	Cooldown  []Drill     `yaml:"-"`
}

// Routine maps weekday names ("Monday") to the gym plan for that day.
type Routine map[string]DayPlan

type Phase struct {
	Name    string  `yaml:"name"`
	Theme   string  `yaml:"theme"`
	Routine Routine `yaml:"routine"`
}

type LibraryEntry struct {
	Name    string `yaml:"-"`
	Muscle  string `yaml:"muscle"`
	Stretch string `yaml:"stretch"`
	Cue     string `yaml:"cue"`
}

type SupplementSlot struct {
	Slot  string   `yaml:"slot"`
	Items []string `yaml:"items"`
}
