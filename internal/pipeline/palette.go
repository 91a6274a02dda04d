package pipeline

// ColorSequence is the discrete colour sequence for categorical series
var ColorSequence = []string{
	"#1B1F3B", // midnight blue
	"#FF0054", // magenta
	"#FF9F1C", // mango
	"#2EC4B6", // teal
	"#9D4EDD", // violet
}

// ContinuousScale is the gradient used for numeric colour fields
var ContinuousScale = []string{"#1B1F3B", "#FF0054", "#FF9F1C"}

// palette assigns colours to categories in the order they are first seen.
// The assignment is local to one view, so a category can change colour when
// a filter removes an earlier one.
type palette struct {
	colors map[string]string
	order  []string
}

func newPalette() *palette {
	return &palette{colors: make(map[string]string)}
}

// colorOf returns the colour for key, assigning the next one on first sight
func (p *palette) colorOf(key string) string {
	if c, ok := p.colors[key]; ok {
		return c
	}
	c := ColorSequence[len(p.order)%len(ColorSequence)]
	p.colors[key] = c
	p.order = append(p.order, key)
	return c
}
