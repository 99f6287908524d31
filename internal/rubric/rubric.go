package rubric

import "math"

// Axis is one of the ten strategic tensions ("Ten Lenses"). A position on an
// axis runs 0-100, where 0 means fully the left label and 100 fully the right.
type Axis struct {
	Name       string `json:"name"`
	LeftLabel  string `json:"left_label"`
	RightLabel string `json:"right_label"`
}

// Theme is one of the six maturity themes from the Data Maturity Assessment
// for Government framework. Theme scores run 1-5.
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Level is the discrete maturity level mapped from an average theme score.
type Level int

const (
	Beginning Level = iota + 1
	Emerging
	Learning
	Developing
	Mastering
)

var levelNames = map[Level]string{
	Beginning:  "Beginning",
	Emerging:   "Emerging",
	Learning:   "Learning",
	Developing: "Developing",
	Mastering:  "Mastering",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// LevelFromAverage maps an average theme score to the nearest level, clamped
// to the valid range.
func LevelFromAverage(avg float64) Level {
	idx := int(math.Round(avg))
	if idx < 1 {
		idx = 1
	}
	if idx > 5 {
		idx = 5
	}
	return Level(idx)
}

var axes = []Axis{
	{Name: "Abstraction Level", LeftLabel: "Conceptual", RightLabel: "Logical / Physical"},
	{Name: "Adaptability", LeftLabel: "Living", RightLabel: "Fixed"},
	{Name: "Ambition", LeftLabel: "Essential", RightLabel: "Transformational"},
	{Name: "Coverage", LeftLabel: "Horizontal", RightLabel: "Use-case-based"},
	{Name: "Governance Structure", LeftLabel: "Ecosystem / Federated", RightLabel: "Centralised"},
	{Name: "Orientation", LeftLabel: "Technology-focused", RightLabel: "Value-focused"},
	{Name: "Motivation", LeftLabel: "Compliance-driven", RightLabel: "Innovation-driven"},
	{Name: "Access Philosophy", LeftLabel: "Data-democratised", RightLabel: "Controlled access"},
	{Name: "Delivery Mode", LeftLabel: "Incremental", RightLabel: "Big Bang"},
	{Name: "Decision Model", LeftLabel: "Data-informed", RightLabel: "Data-driven"},
}

var themes = []Theme{
	{Name: "Uses", Description: "How you get value out of data. Making decisions, evidencing impact, improving services."},
	{Name: "Data", Description: "Technical aspects of managing data as an asset: collection, quality, cataloguing, interoperability."},
	{Name: "Leadership", Description: "How senior and business leaders engage with data: strategy, responsibility, oversight, investment."},
	{Name: "Culture", Description: "Attitudes to data across the organisation: awareness, openness, security, responsibility."},
	{Name: "Tools", Description: "The systems and tools you use to store, share and work with data."},
	{Name: "Skills", Description: "Data and analytical literacy across the organisation, including how people build and maintain those skills."},
}

// Axes returns the ten tension axes in declaration order.
func Axes() []Axis {
	return append([]Axis{}, axes...)
}

// Themes returns the six maturity themes in declaration order.
func Themes() []Theme {
	return append([]Theme{}, themes...)
}

// AxisNames returns the axis names in declaration order.
func AxisNames() []string {
	names := make([]string, 0, len(axes))
	for _, a := range axes {
		names = append(names, a.Name)
	}
	return names
}

// ThemeNames returns the theme names in declaration order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	return names
}

// AxisByName looks up an axis by its exact name.
func AxisByName(name string) (Axis, bool) {
	for _, a := range axes {
		if a.Name == name {
			return a, true
		}
	}
	return Axis{}, false
}

// Levels returns all maturity levels in ascending order.
func Levels() []Level {
	return []Level{Beginning, Emerging, Learning, Developing, Mastering}
}
