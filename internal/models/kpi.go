package models

// Icon names the glyph the front-end renders on a KPI card.
// The set is shared with the front-end's icon registry.
type Icon string

const (
	IconUsers       Icon = "Users"
	IconBarChart    Icon = "BarChart"
	IconCheckCircle Icon = "CheckCircle"
	IconAlertCircle Icon = "AlertCircle"
)

var knownIcons = map[Icon]struct{}{
	IconUsers:       {},
	IconBarChart:    {},
	IconCheckCircle: {},
	IconAlertCircle: {},
}

// Valid reports whether the icon belongs to the front-end vocabulary.
func (i Icon) Valid() bool {
	_, ok := knownIcons[i]
	return ok
}

// Color is a palette name understood by the front-end's styling (indigo, emerald, ...).
type Color string

const (
	ColorIndigo  Color = "indigo"
	ColorEmerald Color = "emerald"
	ColorBlue    Color = "blue"
	ColorRed     Color = "red"
)

var knownColors = map[Color]struct{}{
	ColorIndigo:  {},
	ColorEmerald: {},
	ColorBlue:    {},
	ColorRed:     {},
}

func (c Color) Valid() bool {
	_, ok := knownColors[c]
	return ok
}

// Kpi is a single dashboard card. Value is pre-formatted for display and is never
// parsed or computed on.
type Kpi struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  Icon   `json:"icon"`
	Color Color  `json:"color"`
}

// NewKpi creates a Kpi model
func NewKpi(title, value string, icon Icon, color Color) Kpi {
	return Kpi{
		Title: title,
		Value: value,
		Icon:  icon,
		Color: color,
	}
}
