package extract

// State is the parser's position within a document
type State uint8

const (
	// StateNormal is plain prose
	StateNormal State = iota
	// StateInPreamble is inside a front matter block
	StateInPreamble
	// StateInCodeBlock is inside a fenced code block
	StateInCodeBlock
	// StateInCodePreamble is a "---" block opened while inside a code block.
	// Its closing delimiter resumes the code block.
	StateInCodePreamble
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateInPreamble:
		return "in_preamble"
	case StateInCodeBlock:
		return "in_code_block"
	case StateInCodePreamble:
		return "in_code_preamble"
	default:
		return "unknown"
	}
}

// InPreamble reports whether lines are currently discarded as front matter
func (s State) InPreamble() bool {
	return s == StateInPreamble || s == StateInCodePreamble
}

// InCode reports whether a code block is open, including one suspended by a preamble
func (s State) InCode() bool {
	return s == StateInCodeBlock || s == StateInCodePreamble
}

func (s State) togglePreamble() State {
	switch s {
	case StateInPreamble:
		return StateNormal
	case StateInCodeBlock:
		return StateInCodePreamble
	case StateInCodePreamble:
		return StateInCodeBlock
	default:
		return StateInPreamble
	}
}
