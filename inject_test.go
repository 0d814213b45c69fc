package bramble

import (
	"reflect"
	"testing"
)

func TestPostDispatchesInArrivalOrder(t *testing.T) {
	c, _, a, b := inputTree(t)
	var log eventLog
	log.watch(a, b)

	c.Post(Event{Kind: InputPointerMove, X: 10, Y: 10})
	c.Post(Event{Kind: InputPointerDown, X: 10, Y: 10, Button: MouseButtonLeft})
	c.Post(Event{Kind: InputPointerUp, X: 10, Y: 10, Button: MouseButtonLeft})
	c.Post(Event{Kind: InputKeyDown, Key: KeyX})
	c.Post(Event{Kind: InputText, Text: "x"})
	c.Post(Event{Kind: InputKeyUp, Key: KeyX})
	if c.Pending() != 6 {
		t.Fatalf("Pending = %d, want 6", c.Pending())
	}
	assertLog(t, log) // nothing dispatched before Update

	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	assertLog(t, log, "enter:a", "move:a", "gained:a", "down:a", "up:a", "click:a", "keydown:a", "text:a", "keyup:a")
	if c.Pending() != 0 {
		t.Errorf("Pending after Update = %d, want 0", c.Pending())
	}
}

func TestPostResizeAndWheel(t *testing.T) {
	c, root, _, b := inputTree(t)
	var dy float64
	b.OnWheel = func(ev WheelEvent) { dy = ev.DY }
	c.Post(Event{Kind: InputPointerMove, X: 150, Y: 50})
	c.Post(Event{Kind: InputWheel, DY: 2})
	c.Post(Event{Kind: InputResize, W: 300, H: 200})
	_ = c.Update(0)
	if dy != 2 {
		t.Errorf("wheel dy = %v, want 2", dy)
	}
	if root.Width() != 300 || root.Height() != 200 {
		t.Errorf("root = (%v, %v), want (300, 200)", root.Width(), root.Height())
	}
}

func TestInjectDrag(t *testing.T) {
	c, _, a, _ := inputTree(t)
	var xs []float64
	a.OnPointerMove = func(ev PointerEvent) { xs = append(xs, ev.X) }
	var upX float64
	a.OnPointerUp = func(ev PointerEvent) { upX = ev.X }

	c.InjectDrag(10, 10, 50, 10, 3)
	if c.Pending() != 6 {
		t.Fatalf("Pending = %d, want 6 (press, 3 moves, final move, release)", c.Pending())
	}
	_ = c.Update(0)
	if !reflect.DeepEqual(xs, []float64{20, 30, 40, 50}) {
		t.Errorf("move xs = %v, want [20 30 40 50]", xs)
	}
	if upX != 50 {
		t.Errorf("release x = %v, want 50", upX)
	}
}

func TestInjectKeyAndText(t *testing.T) {
	c, _, a, _ := inputTree(t)
	var log eventLog
	log.watch(a)
	c.SetFocus(a)
	log.reset()

	c.InjectKey(KeyEnter)
	c.InjectText("ok")
	_ = c.Update(0)
	assertLog(t, log, "keydown:a", "keyup:a", "text:a")
}

func TestEventsPostedDuringDrain(t *testing.T) {
	c, _, a, _ := inputTree(t)
	var texts []string
	a.OnClick = func(PointerEvent) { c.InjectText("from-click") }
	a.OnText = func(ev TextEvent) { texts = append(texts, ev.Text) }

	c.InjectClick(10, 10)
	_ = c.Update(0)
	if !reflect.DeepEqual(texts, []string{"from-click"}) {
		t.Errorf("texts = %v, want [from-click]", texts)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", c.Pending())
	}
}

func TestStopDuringDrain(t *testing.T) {
	c, _, a, _ := inputTree(t)
	var texts int
	a.OnPointerDown = func(PointerEvent) { c.Stop() }
	a.OnText = func(TextEvent) { texts++ }

	c.Post(Event{Kind: InputPointerDown, X: 10, Y: 10})
	c.Post(Event{Kind: InputText, Text: "late"})
	if err := c.Update(0); err != nil {
		t.Fatal(err)
	}
	if texts != 0 {
		t.Error("events after Stop should not be dispatched")
	}
	if c.Running() || c.Pending() != 0 {
		t.Error("Stop should leave an idle context with an empty queue")
	}
}
