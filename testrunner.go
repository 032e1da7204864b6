package oxide

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Delta  int16   `json:"delta,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner turns a script of input actions into one raw input snapshot per
// frame, for automated visual testing and headless replays.
//
// Each frame the host calls Next before UpdateAndRender, then saves a
// screenshot for every label Next returned.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	cur   InputController
	queue []InputController
}

// NewTestRunner returns a runner with no script. Queue input with the Inject
// methods.
func NewTestRunner() *TestRunner {
	return &TestRunner{}
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func validateStep(st testStep) error {
	switch st.Action {
	case "press", "move", "release", "click", "drag",
		"rightclick", "middleclick", "wheel", "wait", "screenshot":
		return nil
	case "key":
		var in InputController
		if in.KeyByName(st.Key) == nil {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// Done reports whether every step has run and every queued frame has been
// consumed.
func (r *TestRunner) Done() bool {
	return r.done || (r.cursor >= len(r.steps) && len(r.queue) == 0 && r.waitCount == 0)
}

// Next records the next synthetic snapshot into in and returns the
// screenshot labels due this frame. Once the script is done the last input
// state is held.
func (r *TestRunner) Next(in *InputController) []string {
	var labels []string
	if len(r.queue) == 0 && r.waitCount == 0 && r.cursor < len(r.steps) {
		labels = r.step()
	}

	if len(r.queue) > 0 {
		in.Update(r.pop())
	} else {
		if r.waitCount > 0 {
			r.waitCount--
		}
		in.Update(r.cur)
	}

	if r.cursor >= len(r.steps) && len(r.queue) == 0 && r.waitCount == 0 {
		r.done = true
	}
	return labels
}

// step executes the step under the cursor.
func (r *TestRunner) step() []string {
	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		return []string{st.Label}
	case "press":
		r.InjectPress(st.X, st.Y)
	case "move":
		r.InjectMove(st.X, st.Y)
	case "release":
		r.InjectRelease(st.X, st.Y)
	case "click":
		r.InjectClick(st.X, st.Y)
	case "drag":
		r.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "rightclick":
		r.InjectRightClick(st.X, st.Y)
	case "middleclick":
		r.InjectMiddleClick(st.X, st.Y)
	case "key":
		r.InjectKey(st.Key, st.Frames)
	case "wheel":
		r.InjectWheel(st.Delta)
	case "wait":
		r.waitCount = st.Frames
	}
	return nil
}
