package bramble

import (
	"errors"
	"testing"
)

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("n")
	if n.ID != "n" {
		t.Errorf("ID = %q, want %q", n.ID, "n")
	}
	if !n.Enabled || !n.Visible {
		t.Error("new node should be enabled and visible")
	}
	if n.Expand || n.CanFocus {
		t.Error("new node should not expand or take focus")
	}
	if n.Parent() != nil {
		t.Error("new node should have no parent")
	}
	if w, h := n.MinSize(); w != 1 || h != 1 {
		t.Errorf("MinSize = (%v, %v), want (1, 1)", w, h)
	}
}

// --- AddChild ---

func TestAddChildErrors(t *testing.T) {
	parent := NewNode("parent")
	other := NewNode("other")
	owned := NewNode("owned")
	if err := other.AddChild(owned); err != nil {
		t.Fatal(err)
	}
	grand := NewNode("grand")
	if err := parent.AddChild(NewNode("mid")); err != nil {
		t.Fatal(err)
	}
	mid := parent.ChildAt(0)
	if err := mid.AddChild(grand); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		target *Node
		child  *Node
		index  int
		want   error
	}{
		{"nil child", parent, nil, 0, ErrNilNode},
		{"owned elsewhere", parent, owned, 0, ErrHasParent},
		{"self", parent, parent, 0, ErrCycle},
		{"ancestor", grand, parent, 0, ErrCycle},
		{"negative index", parent, NewNode("x"), -1, ErrIndexRange},
		{"index past end", parent, NewNode("x"), 2, ErrIndexRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.AddChildAt(tt.child, tt.index)
			if !errors.Is(err, tt.want) {
				t.Errorf("AddChildAt = %v, want %v", err, tt.want)
			}
		})
	}
	if owned.Parent() != other {
		t.Error("rejected add must not change the child's parent")
	}
}

func TestAddChildAtInsertsInOrder(t *testing.T) {
	p := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	_ = p.AddChild(a)
	_ = p.AddChild(c)
	if err := p.AddChildAt(b, 1); err != nil {
		t.Fatal(err)
	}
	assertChildIDs(t, p, "a", "b", "c")
	if b.Parent() != p {
		t.Error("Parent not set")
	}
}

func TestAddChildMovesWithinParent(t *testing.T) {
	p := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	_ = p.AddChild(a)
	_ = p.AddChild(b)
	_ = p.AddChild(c)

	if err := p.AddChild(a); err != nil {
		t.Fatalf("re-adding own child: %v", err)
	}
	assertChildIDs(t, p, "b", "c", "a")

	if err := p.AddChildAt(a, 0); err != nil {
		t.Fatal(err)
	}
	assertChildIDs(t, p, "a", "b", "c")
}

// --- RemoveChild ---

func TestRemoveChildClearsParent(t *testing.T) {
	p := NewNode("p")
	a := NewNode("a")
	_ = p.AddChild(a)

	got, ok := p.RemoveChild(a)
	if !ok || got != a {
		t.Fatalf("RemoveChild = (%v, %v), want (a, true)", got, ok)
	}
	if a.Parent() != nil {
		t.Error("detached child still references parent")
	}
	if p.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", p.NumChildren())
	}
	if _, ok := p.RemoveChild(a); ok {
		t.Error("second RemoveChild should report false")
	}
}

func TestRemoveChildAt(t *testing.T) {
	p := NewNode("p")
	_ = p.AddChild(NewNode("a"))
	_ = p.AddChild(NewNode("b"))

	tests := []struct {
		name   string
		index  int
		wantID string
		wantOK bool
	}{
		{"negative", -1, "", false},
		{"past end", 2, "", false},
		{"last", 1, "b", true},
		{"first", 0, "a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.RemoveChildAt(tt.index)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("removed %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

func TestRemoveFromParentAndChildren(t *testing.T) {
	p := NewNode("p")
	a, b := NewNode("a"), NewNode("b")
	_ = p.AddChild(a)
	_ = p.AddChild(b)

	a.RemoveFromParent()
	a.RemoveFromParent() // no-op when detached
	assertChildIDs(t, p, "b")

	p.RemoveChildren()
	if p.NumChildren() != 0 || b.Parent() != nil {
		t.Error("RemoveChildren should detach every child")
	}
	if err := p.AddChild(a); err != nil {
		t.Errorf("detached node should be re-addable: %v", err)
	}
}

// --- Iteration and lookup ---

func TestChildrenOrder(t *testing.T) {
	p := NewNode("p")
	for _, id := range []string{"a", "b", "c"} {
		_ = p.AddChild(NewNode(id))
	}
	tests := []struct {
		name     string
		reversed bool
		want     string
	}{
		{"forward", false, "abc"},
		{"reversed", true, "cba"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			for c := range p.Children(tt.reversed) {
				got += c.ID
			}
			if got != tt.want {
				t.Errorf("order = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChildrenSnapshotSurvivesRemoval(t *testing.T) {
	p := NewNode("p")
	for _, id := range []string{"a", "b", "c"} {
		_ = p.AddChild(NewNode(id))
	}
	var got string
	for c := range p.Children(false) {
		got += c.ID
		c.RemoveFromParent()
	}
	if got != "abc" {
		t.Errorf("visited %q, want %q", got, "abc")
	}
	if p.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", p.NumChildren())
	}
}

func TestChildAtAndIndexOf(t *testing.T) {
	p := NewNode("p")
	a := NewNode("a")
	_ = p.AddChild(a)
	if p.ChildAt(0) != a {
		t.Error("ChildAt(0) should be a")
	}
	if p.ChildAt(1) != nil || p.ChildAt(-1) != nil {
		t.Error("ChildAt out of range should be nil")
	}
	if p.IndexOf(a) != 0 || p.IndexOf(NewNode("x")) != -1 {
		t.Error("IndexOf mismatch")
	}
}

func TestFindByIDPrecedence(t *testing.T) {
	root := NewNode("dup")
	first := NewNode("first")
	deep := NewNode("dup")
	sibling := NewNode("dup")
	_ = root.AddChild(first)
	_ = first.AddChild(deep)
	_ = root.AddChild(sibling)

	got, ok := root.FindByID("dup")
	if !ok || got != deep {
		t.Errorf("FindByID = %v, want the descendant under the first child", got)
	}

	got, ok = sibling.FindByID("dup")
	if !ok || got != sibling {
		t.Error("a node with no matching descendants should find itself")
	}

	if got, ok := root.FindByID("missing"); ok || got != nil {
		t.Errorf("FindByID(missing) = (%v, %v), want (nil, false)", got, ok)
	}
}

func TestAbsolutePositionRootAndDepth(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	_ = root.AddChild(mid)
	_ = mid.AddChild(leaf)
	root.SetRect(5, 5, 200, 200)
	mid.SetRect(10, 20, 100, 100)
	leaf.SetRect(1, 2, 10, 10)

	if x, y := leaf.AbsolutePosition(); x != 16 || y != 27 {
		t.Errorf("AbsolutePosition = (%v, %v), want (16, 27)", x, y)
	}
	if leaf.Root() != root || root.Root() != root {
		t.Error("Root mismatch")
	}
	if leaf.Depth() != 2 || root.Depth() != 0 {
		t.Errorf("Depth = %d/%d, want 2/0", leaf.Depth(), root.Depth())
	}
}

func assertChildIDs(t *testing.T, n *Node, want ...string) {
	t.Helper()
	if n.NumChildren() != len(want) {
		t.Fatalf("NumChildren = %d, want %d", n.NumChildren(), len(want))
	}
	for i, id := range want {
		if got := n.ChildAt(i).ID; got != id {
			t.Errorf("child %d = %q, want %q", i, got, id)
		}
	}
}
