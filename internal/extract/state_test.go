package extract

import (
	"reflect"
	"testing"
)

func TestStep_Transitions(t *testing.T) {
	tests := []struct {
		name          string
		state         State
		acc           string
		line          string
		opts          Options
		wantState     State
		wantAcc       string
		wantCompleted []string
	}{
		{"blank", StateNormal, "x ", "", Options{}, StateNormal, "x ", nil},
		{"heading", StateNormal, "x ", "## Title", Options{}, StateNormal, "x ", nil},
		{"heading in code", StateInCodeBlock, "a\n", "# comment", Options{}, StateInCodeBlock, "a\n", nil},
		{"heading in code kept", StateInCodeBlock, "a\n", "# comment", Options{KeepCodeHeadings: true}, StateInCodeBlock, "a\n# comment\n", nil},
		{"open preamble", StateNormal, "", "---", Options{}, StateInPreamble, "", nil},
		{"close preamble", StateInPreamble, "", "---", Options{}, StateNormal, "", nil},
		{"longer delimiter", StateNormal, "", "-----", Options{}, StateInPreamble, "", nil},
		{"preamble body", StateInPreamble, "", "title: x.", Options{}, StateInPreamble, "", nil},
		{"preamble in code", StateInCodeBlock, "a\n", "---", Options{}, StateInCodePreamble, "a\n", nil},
		{"resume code", StateInCodePreamble, "a\n", "---", Options{}, StateInCodeBlock, "a\n", nil},
		{"fence in preamble ignored", StateInPreamble, "", "```", Options{}, StateInPreamble, "", nil},
		{"open fence keeps acc", StateNormal, "pending ", "```rust", Options{}, StateInCodeBlock, "pending ", nil},
		{"close fence flushes", StateInCodeBlock, "a\n", "```", Options{}, StateNormal, "", []string{"a\n"}},
		{"close empty fence", StateInCodeBlock, "", "```", Options{}, StateNormal, "", []string{""}},
		{"split", StateNormal, "x ", "a. b", Options{}, StateNormal, "b ", []string{"x a."}},
		{"period end", StateNormal, "x ", "done.", Options{}, StateNormal, "", []string{"x done."}},
		{"prose continuation", StateNormal, "", "word", Options{}, StateNormal, "word ", nil},
		{"code continuation", StateInCodeBlock, "", "word", Options{}, StateInCodeBlock, "word\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Step(tt.state, tt.acc, tt.line, tt.opts)
			if got.State != tt.wantState {
				t.Errorf("state = %v, want %v", got.State, tt.wantState)
			}
			if got.Acc != tt.wantAcc {
				t.Errorf("acc = %q, want %q", got.Acc, tt.wantAcc)
			}
			if !reflect.DeepEqual(got.Completed, tt.wantCompleted) {
				t.Errorf("completed = %q, want %q", got.Completed, tt.wantCompleted)
			}
		})
	}
}

func TestState_Predicates(t *testing.T) {
	if StateNormal.InPreamble() || StateNormal.InCode() {
		t.Error("normal state should be neither preamble nor code")
	}
	if !StateInCodePreamble.InPreamble() || !StateInCodePreamble.InCode() {
		t.Error("code preamble should be both preamble and suspended code")
	}
	if StateInCodeBlock.String() != "in_code_block" {
		t.Errorf("unexpected name %q", StateInCodeBlock.String())
	}
	if State(42).String() != "unknown" {
		t.Errorf("unexpected name %q", State(42).String())
	}
}
