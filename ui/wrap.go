package ui

import (
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WrapText breaks s into lines of at most cols runes, splitting on spaces.
// Words longer than cols are split hard. Existing line breaks are kept.
func WrapText(s string, cols int) string {
	if cols <= 0 {
		return s
	}

	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		var line []rune
		for _, w := range words {
			word := []rune(w)
			for len(word) > cols {
				if len(line) > 0 {
					out = append(out, string(line))
					line = nil
				}
				out = append(out, string(word[:cols]))
				word = word[cols:]
			}
			if len(word) == 0 {
				continue
			}
			switch {
			case len(line) == 0:
				line = append(line, word...)
			case len(line)+1+len(word) <= cols:
				line = append(line, ' ')
				line = append(line, word...)
			default:
				out = append(out, string(line))
				line = append([]rune(nil), word...)
			}
		}
		if len(line) > 0 {
			out = append(out, string(line))
		}
	}
	return strings.Join(out, "\n")
}

// Quote wraps s and puts it in double quotes
func Quote(s string, cols int) string {
	return "\"" + WrapText(s, cols) + "\""
}

// Pulse animates the trailing dots of a pending status line
type Pulse struct {
	tween *gween.Tween
	value float32
}

// pulsePeriod is one 0 -> 3 sweep of the dots, in frames
const pulsePeriod = 54

func NewPulse() *Pulse {
	return &Pulse{tween: gween.New(0, 3, pulsePeriod, ease.InOutSine)}
}

// Step advances one frame and returns how many dots to show, 1 to 3
func (p *Pulse) Step() int {
	v, done := p.tween.Update(1)
	p.value = v
	if done {
		p.tween.Reset()
	}
	return p.Dots()
}

// Dots is the current dot count without advancing
func (p *Pulse) Dots() int {
	n := int(p.value) + 1
	if n > 3 {
		n = 3
	}
	return n
}

// Reset restarts the sweep
func (p *Pulse) Reset() {
	p.tween.Reset()
	p.value = 0
}

// Thinking is text followed by n dots, replacing any dots text ends with
func Thinking(text string, n int) string {
	return strings.TrimRight(text, ".") + strings.Repeat(".", n)
}
