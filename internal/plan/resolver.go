package plan

import (
	"slices"
	"time"

	"github.com/sadopc/bulletproof/internal/history"
	"github.com/sadopc/bulletproof/internal/program"
)

// Source is the read-only view of program data the resolver needs.
// *program.Config implements it.
type Source interface {
	Routine(phase string) (program.Routine, bool)
	Warmup(cat program.Category) ([]program.Drill, bool)
	Cooldown(cat program.Category) ([]program.Drill, bool)
	HomeSet(key string) ([]program.Exercise, bool)
	DefaultHomeSet() []program.Exercise
	RehabSet() []program.Exercise
	CourseSession(week int, day string) (program.DayPlan, bool)
}

type Location int

const (
	LocationGym Location = iota
	LocationHome
)

func (l Location) String() string {
	if l == LocationHome {
		return "Home"
	}
	return "Gym"
}

const homePrefix = "Home Repair: "

// Request selects the day to resolve in a phase of the weekly protocol.
type Request struct {
	Phase    string
	Weekday  time.Weekday
	Location Location
	Mood     history.Mood
}

// CourseRequest selects one session of the multi-week course.
type CourseRequest struct {
	Week int
	Day  string
	Mood history.Mood
}

type Resolver struct {
	src Source
}

func NewResolver(src Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve returns the plan for one day. It never fails: unknown phases and
// weekdays resolve to a recovery day, unknown categories to the Mobility
// warmup and cooldown.
func (r *Resolver) Resolve(req Request) program.DayPlan {
	if req.Mood == history.MoodInjured {
		return r.rehabPlan()
	}

	gym, ok := r.lookupDay(req.Phase, req.Weekday.String())
	if !ok {
		gym = recoveryPlan()
	}
	p := clonePlan(gym)
	if p.Category == "" {
		p.Category = program.CategoryMobility
	}

	if req.Location == LocationHome && p.Type == program.SessionGym {
		p.Focus = homePrefix + p.Focus
		p.Type = program.SessionHome
		p.Exercises = slices.Clone(r.homeExercises(p))
	}

	p.Warmup = r.warmup(p.Category)
	p.Cooldown = r.cooldown(p.Category)
	return p
}

// ResolveCourse returns one course session. Course sessions are bodyweight
// work and resolve as home sessions; location does not apply.
func (r *Resolver) ResolveCourse(req CourseRequest) program.DayPlan {
	if req.Mood == history.MoodInjured {
		return r.rehabPlan()
	}

	session, ok := r.src.CourseSession(req.Week, req.Day)
	if !ok {
		session = recoveryPlan()
	}
	p := clonePlan(session)
	if p.Category == "" {
		p.Category = program.CategoryMobility
	}
	if p.Type == "" {
		p.Type = program.SessionHome
	}
	p.Warmup = r.warmup(p.Category)
	p.Cooldown = r.cooldown(p.Category)
	return p
}

func (r *Resolver) lookupDay(phase, weekday string) (program.DayPlan, bool) {
	routine, ok := r.src.Routine(phase)
	if !ok {
		return program.DayPlan{}, false
	}
	p, ok := routine[weekday]
	return p, ok
}

// homeExercises prefers the plan's own home mapping, then its category, then
// the default home set.
func (r *Resolver) homeExercises(p program.DayPlan) []program.Exercise {
	if ex, ok := r.src.HomeSet(p.HomeKey); ok {
		return ex
	}
	if ex, ok := r.src.HomeSet(string(p.Category)); ok {
		return ex
	}
	return r.src.DefaultHomeSet()
}

func (r *Resolver) warmup(cat program.Category) []program.Drill {
	if d, ok := r.src.Warmup(cat); ok {
		return slices.Clone(d)
	}
	d, _ := r.src.Warmup(program.CategoryMobility)
	return slices.Clone(d)
}

func (r *Resolver) cooldown(cat program.Category) []program.Drill {
	if d, ok := r.src.Cooldown(cat); ok {
		return slices.Clone(d)
	}
	d, _ := r.src.Cooldown(program.CategoryMobility)
	return slices.Clone(d)
}

// rehabPlan is the injury override. It has no warmup, cooldown or core.
func (r *Resolver) rehabPlan() program.DayPlan {
	return program.DayPlan{
		Focus:     "Emergency Rehab",
		Type:      program.SessionRehab,
		Category:  program.CategoryMobility,
		Exercises: slices.Clone(r.src.RehabSet()),
		Core:      []program.Exercise{},
		Warmup:    []program.Drill{},
		Cooldown:  []program.Drill{},
	}
}

func recoveryPlan() program.DayPlan {
	return program.DayPlan{
		Focus:    "Rest",
		Type:     program.SessionRecovery,
		Category: program.CategoryMobility,
		HomeKey:  string(program.CategoryMobility),
		Exercises: []program.Exercise{
			{Name: "Walk", Sets: "30m"},
		},
		Core: []program.Exercise{},
	}
}

func clonePlan(p program.DayPlan) program.DayPlan {
	p.Exercises = slices.Clone(p.Exercises)
	p.Core = slices.Clone(p.Core)
	return p
}
