package bramble

import "log/slog"

// Thresholds for the tree shape warnings logged at Start in debug mode.
const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// debugCheckTree walks the tree once and logs nodes that are nested too
// deeply or carry too many children.
func (c *RunContext) debugCheckTree(root *Node) {
	c.debugCheckNode(root, 1)
}

func (c *RunContext) debugCheckNode(n *Node, depth int) {
	if depth == debugMaxTreeDepth+1 {
		c.logger.Warn("bramble: tree depth exceeds threshold",
			slog.String("node", n.ID),
			slog.Int("depth", depth),
			slog.Int("threshold", debugMaxTreeDepth))
	}
	if len(n.children) > debugMaxChildCount {
		c.logger.Warn("bramble: node has many children",
			slog.String("node", n.ID),
			slog.Int("children", len(n.children)),
			slog.Int("threshold", debugMaxChildCount))
	}
	for _, child := range n.children {
		c.debugCheckNode(child, depth+1)
	}
}
