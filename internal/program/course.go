package program

import "sort"

// Course is a fixed multi-week program. Each block covers a run of weeks and
// repeats the same day schedule for all of them.
type Course struct {
	Name   string        `yaml:"name"`
	Blocks []CourseBlock `yaml:"blocks"`
}

type CourseBlock struct {
	Phase    string             `yaml:"phase"`
	Theme    string             `yaml:"theme"`
	Weeks    []int              `yaml:"weeks"`
	Schedule map[string]DayPlan `yaml:"schedule"`
}

// Block returns the block that covers week.
func (c Course) Block(week int) (CourseBlock, bool) {
	for _, b := range c.Blocks {
		for _, w := range b.Weeks {
			if w == week {
				return b, true
			}
		}
	}
	return CourseBlock{}, false
}

// Weeks lists every week covered by the course in ascending order.
func (c Course) Weeks() []int {
	var weeks []int
	for _, b := range c.Blocks {
		weeks = append(weeks, b.Weeks...)
	}
	sort.Ints(weeks)
	return weeks
}

// Days lists the day labels of the first block, sorted.
func (c Course) Days() []string {
	if len(c.Blocks) == 0 {
		return nil
	}
	days := make([]string, 0, len(c.Blocks[0].Schedule))
	for d := range c.Blocks[0].Schedule {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}
