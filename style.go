package progbar

//go:generate go tool stringer -type=Style

// Style selects the glyph pair the bar is drawn with.
type Style int

const (
	// StyleHashes draws |###====|
	StyleHashes Style = iota
	// StyleBoxes1 draws |▉▉▉▉░░░|
	StyleBoxes1
	// StyleBoxes2 is reserved, currently drawn as StyleHashes.
	StyleBoxes2
	// StyleUnderscore draws |▉▉▉____|
	StyleUnderscore
)

// glyphs resolves a style to its fill and track characters. Any value
// outside the implemented set resolves to the StyleHashes pair.
func (s Style) glyphs() (fill, track string) {
	switch s {
	case StyleBoxes1:
		return "▉", "░"
	case StyleUnderscore:
		return "▉", "_"
	default:
		return "#", "="
	}
}
