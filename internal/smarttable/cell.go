package smarttable

// Cell is a ready-made presentation value for Column.Display. The table
// never looks inside it; renderers that understand Cell can show links and
// styling, and anything else can fall back to its String form.
type Cell struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
	Tone string `json:"tone,omitempty"`
}

func (c Cell) String() string {
	return c.Text
}

// TextCell returns a plain Cell.
func TextCell(text string) Cell {
	return Cell{Text: text}
}
