package widget

import "math"

// Vertical extent (absolute min/max y) of the visible descendants of root. Hidden nodes, decorative nodes and nodes matched by skip are left out together with their subtrees. Only KindContainer nodes are descended into. Returns ok=false if no node qualified.
func ComputeExtent(root *EmbedNode, skip func(*EmbedNode) bool) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	var visit func(*EmbedNode)
	visit = func(en *EmbedNode) {
		en.Iterate2(func(c *EmbedNode) {
			if !c.Visible() || c.Kind == KindDecorative {
				return
			}
			if skip != nil && skip(c) {
				return
			}
			if c.Kind == KindContainer {
				visit(c)
			}
			y := c.AbsPos().Y
			min = math.Min(min, y)
			max = math.Max(max, y+c.Size.Y)
			ok = true
		})
	}
	visit(root)
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}
