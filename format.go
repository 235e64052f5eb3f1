package progbar

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	labelField  = 40
	labelCenter = 20
	labelHead   = 19
	labelTail   = 18
)

// normalizeLabel fits a label into the fixed 40 cell field. Labels
// longer than the field keep their head and tail around an ellipsis
// marker, shorter ones are left justified.
func normalizeLabel(label string) string {
	r := []rune(label)
	if len(r) > labelField {
		return string(r[:labelHead]) + "..." + string(r[len(r)-labelTail:])
	}
	return runewidth.FillRight(label, labelField)
}

// center pads s on both sides to the given cell width, extra cell
// going to the right. Strings at or above the width come back as is.
func center(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// readout formats the text trailing the bar: either a percentage or
// a "N of M" count with optional unit suffix.
func (b *Bar) readout() string {
	var s string
	if b.percent {
		s = fmt.Sprintf("%3.1f%%", float64(b.value)/float64(b.end)*100)
	} else {
		s = fmt.Sprintf("%d of %d", b.value, b.end)
		if b.suffix != "" {
			s += " " + b.suffix
		}
	}
	if b.rate != nil {
		s += fmt.Sprintf(" %.1f/s", b.rate.value())
	}
	return s
}
