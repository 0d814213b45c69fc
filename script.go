package bramble

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Script errors.
var (
	ErrEmptyScript = errors.New("bramble: input script has no steps")
	ErrUnknownKey  = errors.New("bramble: unknown key name")
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	Frames int     `json:"frames,omitempty"`
	ID     string  `json:"id,omitempty"`

	key Key
}

type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input across frames for automated UI
// checks. Attach it with RunContext.SetScriptRunner, or call Step once per
// frame before Update.
//
// A script is JSON of the form:
//
//	{"steps": [
//	  {"action": "click", "x": 40, "y": 12},
//	  {"action": "text", "text": "hello"},
//	  {"action": "key", "key": "enter"},
//	  {"action": "wait", "frames": 3},
//	  {"action": "drag", "fromX": 0, "fromY": 0, "toX": 50, "toY": 0, "steps": 4},
//	  {"action": "focus", "id": "name"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script. Key names are resolved with
// ParseKey up front so a bad script fails before it runs.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "click", "drag", "text", "wait", "focus":
		case "key":
			k, ok := ParseKey(st.Key)
			if !ok || k == KeyUnknown {
				return nil, fmt.Errorf("parse input script: step %d: %w: %q", i, ErrUnknownKey, st.Key)
			}
			st.key = k
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches r to the context. Update calls r.Step each frame
// before dispatching queued events. A nil runner detaches.
func (c *RunContext) SetScriptRunner(r *ScriptRunner) {
	c.script = r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. It does nothing while injected
// events are still queued. A focus step naming an ID that is not in the
// tree returns an error and the script moves on.
func (r *ScriptRunner) Step(c *RunContext) error {
	if r.done {
		return nil
	}
	if c.Pending() > 0 {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Steps)
	case "key":
		c.InjectKey(st.key)
	case "text":
		c.InjectText(st.Text)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "focus":
		err = r.focus(c, st.ID)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && c.Pending() == 0 {
		r.done = true
	}
	return err
}

func (r *ScriptRunner) focus(c *RunContext, id string) error {
	if c.root == nil {
		return ErrNotRunning
	}
	n, ok := c.root.FindByID(id)
	if !ok {
		return fmt.Errorf("bramble: script step %d: no node with id %q", r.cursor-1, id)
	}
	c.SetFocus(n)
	return nil
}
