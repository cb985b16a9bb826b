package style

import "strings"

// IRC control codes, per the mIRC formatting convention.
const (
	codeBold      = "\x02"
	codeColor     = "\x03"
	codeItalic    = "\x1D"
	codeUnderline = "\x1F"
	codeReverse   = "\x16"
)

// Color identifies one of the sixteen standard mIRC colors.
type Color string

const (
	White   Color = "00"
	Black   Color = "01"
	Blue    Color = "02"
	Green   Color = "03"
	Red     Color = "04"
	Brown   Color = "05"
	Purple  Color = "06"
	Orange  Color = "07"
	Yellow  Color = "08"
	LtGreen Color = "09"
	Teal    Color = "10"
	Cyan    Color = "11"
	LtBlue  Color = "12"
	Pink    Color = "13"
	Grey    Color = "14"
	LtGrey  Color = "15"

	// colorDefault restores the client's default color.
	colorDefault Color = "99"
)

// Style is a start/end marker pair wrapping a span of text. The zero
// value marks nothing.
type Style struct {
	Start string
	End   string
}

// None returns the empty style.
func None() Style {
	return Style{}
}

// Bold toggles bold for the span.
func Bold() Style {
	return Style{Start: codeBold, End: codeBold}
}

// Italic toggles italics for the span.
func Italic() Style {
	return Style{Start: codeItalic, End: codeItalic}
}

// Underline toggles underlining for the span.
func Underline() Style {
	return Style{Start: codeUnderline, End: codeUnderline}
}

// Reverse toggles reverse video for the span.
func Reverse() Style {
	return Style{Start: codeReverse, End: codeReverse}
}

// Foreground sets the foreground color for the span and restores the
// default color afterwards.
func Foreground(fg Color) Style {
	return Style{
		Start: codeColor + string(fg),
		End:   codeColor + string(colorDefault),
	}
}

// ColorPair sets both foreground and background colors for the span.
func ColorPair(fg, bg Color) Style {
	return Style{
		Start: codeColor + string(fg) + "," + string(bg),
		End:   codeColor + string(colorDefault) + "," + string(colorDefault),
	}
}

// IsZero reports whether the style marks nothing.
func (s Style) IsZero() bool {
	return s.Start == "" && s.End == ""
}

// Apply wraps text in the style's markers.
func (s Style) Apply(text string) string {
	return s.Start + text + s.End
}

// Strip removes every IRC formatting code from text, leaving plain
// characters only. Color codes may carry up to two digits and an
// optional ",NN" background part.
func Strip(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	skipDigits := func(s string, i, max int) int {
		n := 0
		for i < len(s) && n < max && s[i] >= '0' && s[i] <= '9' {
			i++
			n++
		}
		return i
	}

	for i := 0; i < len(text); {
		switch text[i : i+1] {
		case codeColor:
			i++
			j := skipDigits(text, i, 2)
			if j > i && j < len(text) && text[j] == ',' {
				if k := skipDigits(text, j+1, 2); k > j+1 {
					j = k
				}
			}
			i = j
		case codeBold, codeItalic, codeUnderline, codeReverse, "\x0F":
			i++
		default:
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}
