// Package extract turns Markdown article text into ordered sentences.
//
// Sentence boundaries are found lexically: a line ending in "." closes a
// sentence, and the two-character sequence ". " splits a line into several.
// This is a heuristic, not sentence segmentation. Abbreviations such as
// "e.g. " followed by a space are split like any other boundary, and no
// Unicode or locale rules apply. Changing this changes observable output and
// must be done as an opt-in Option.
package extract

import "strings"

const (
	preambleDelim = "---"
	fenceDelim    = "```"
	splitDelim    = ". "
	headingPrefix = "#"
)

// Options selects the opt-in parser behaviours. The zero value reproduces
// the reference behaviour exactly.
type Options struct {
	// FlushTrailing emits a non-empty accumulator left over at end of input
	// instead of dropping it.
	FlushTrailing bool
	// KeepCodeHeadings stops '#' lines inside a code block from being
	// discarded as headings.
	KeepCodeHeadings bool
}

// Parser extracts sentences from Markdown text
type Parser struct {
	opts Options
}

// NewParser creates a parser with the given options
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Options returns the parser's options
func (p *Parser) Options() Options {
	return p.opts
}

// Parse runs the state machine over text and returns the completed
// sentences in source order. It never fails; malformed input yields a
// best-effort result.
func (p *Parser) Parse(text string) []string {
	sentences := []string{}
	state := StateNormal
	acc := ""

	for _, line := range Lines(text) {
		t := Step(state, acc, line, p.opts)
		state, acc = t.State, t.Acc
		sentences = append(sentences, t.Completed...)
	}

	if p.opts.FlushTrailing {
		if residual, ok := flushResidual(state, acc); ok {
			sentences = append(sentences, residual)
		}
	}

	return sentences
}

// ParseAll parses each text independently, preserving order
func (p *Parser) ParseAll(texts []string) [][]string {
	out := make([][]string, len(texts))
	for i, text := range texts {
		out[i] = p.Parse(text)
	}
	return out
}

// Parse parses text with default options
func Parse(text string) []string {
	return NewParser(Options{}).Parse(text)
}

// Lines splits text on '\n' and "\r\n". A final newline does not start an
// extra empty line. A '\r' not followed by '\n' stays part of its line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	terminated := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// Transition is the outcome of feeding one line to the state machine
type Transition struct {
	State     State
	Acc       string   // Sentence under construction
	Completed []string // Sentences finished by this line, in order
}

// Step applies one line to the state machine. It is pure: the same inputs
// always produce the same Transition.
func Step(state State, acc, line string, opts Options) Transition {
	t := Transition{State: state, Acc: acc}

	switch {
	case line == "":
		return t

	case strings.HasPrefix(line, headingPrefix) && !(opts.KeepCodeHeadings && state == StateInCodeBlock):
		return t

	case strings.HasPrefix(line, preambleDelim):
		t.State = state.togglePreamble()
		return t

	case state.InPreamble():
		return t

	case strings.HasPrefix(line, fenceDelim):
		if state == StateInCodeBlock {
			// Closing fence flushes even an empty block
			t.Completed = []string{acc}
			t.Acc = ""
			t.State = StateNormal
		} else {
			t.State = StateInCodeBlock
		}
		return t

	case state != StateInCodeBlock && strings.Contains(line, splitDelim):
		return splitLine(t, line)

	case strings.HasSuffix(line, "."):
		t.Completed = []string{acc + line}
		t.Acc = ""
		return t
	}

	if state == StateInCodeBlock {
		t.Acc = acc + line + "\n"
	} else {
		t.Acc = acc + line + " "
	}
	return t
}

// splitLine handles a prose line holding one or more ". " boundaries.
// Every fragment but the last closes a sentence; the last one carries on
// into the next line.
func splitLine(t Transition, line string) Transition {
	parts := strings.Split(line, splitDelim)
	acc := t.Acc

	for i, part := range parts {
		if part == "" {
			continue
		}
		acc += part
		if i < len(parts)-1 {
			t.Completed = append(t.Completed, acc+".")
			acc = ""
		} else {
			acc += " "
		}
	}

	t.Acc = acc
	return t
}

// flushResidual returns what is left in the accumulator at end of input.
// Prose loses its trailing join space; code keeps its newlines.
func flushResidual(state State, acc string) (string, bool) {
	if state.InCode() {
		return acc, acc != ""
	}
	residual := strings.TrimRight(acc, " ")
	return residual, residual != ""
}
