package bramble

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func debugContext(buf *bytes.Buffer) *RunContext {
	c := NewRunContext()
	c.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	c.SetDebugMode(true)
	return c
}

func TestDebugWarnsOnDeepTree(t *testing.T) {
	var buf bytes.Buffer
	c := debugContext(&buf)

	root := NewNode("root")
	cur := root
	for i := 0; i < debugMaxTreeDepth+2; i++ {
		child := NewNode("deep")
		_ = cur.AddChild(child)
		cur = child
	}
	if err := c.Start(root, 100, 100); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "tree depth exceeds threshold"); n != 1 {
		t.Errorf("depth warnings = %d, want 1\n%s", n, buf.String())
	}
}

func TestDebugWarnsOnWideNode(t *testing.T) {
	var buf bytes.Buffer
	c := debugContext(&buf)

	root := NewNode("wide")
	for i := 0; i <= debugMaxChildCount; i++ {
		_ = root.AddChild(NewNode("leaf"))
	}
	if err := c.Start(root, 100, 100); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "node has many children") {
		t.Errorf("missing child-count warning:\n%s", buf.String())
	}
}

func TestDebugLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	c := debugContext(&buf)
	root := NewNode("root")
	a := NewNode("a")
	a.CanFocus = true
	_ = root.AddChild(a)
	_ = c.Start(root, 100, 100)
	a.SetRect(0, 0, 50, 50)

	c.PointerMove(10, 10)
	c.PointerDown(10, 10, MouseButtonLeft)
	c.PointerUp(10, 10, MouseButtonLeft)
	_ = c.Update(0.016)
	_ = c.Draw(&recordCanvas{})

	out := buf.String()
	for _, want := range []string{"bramble: hover", "bramble: focus", "bramble: capture start", "bramble: capture release", "bramble: update", "bramble: draw"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q", want)
		}
	}
}

func TestNoDebugOutputByDefault(t *testing.T) {
	var buf bytes.Buffer
	c := NewRunContext()
	c.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	root := NewNode("root")
	_ = c.Start(root, 10, 10)
	c.PointerMove(1, 1)
	_ = c.Update(0)
	if buf.Len() != 0 {
		t.Errorf("unexpected output without debug mode:\n%s", buf.String())
	}
	c.SetLogger(nil)
	if c.logger != slog.Default() {
		t.Error("SetLogger(nil) should restore the default logger")
	}
}
