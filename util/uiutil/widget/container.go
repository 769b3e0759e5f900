package widget

// Holds childs at their own positions. Its childs are part of the content extent.
type Container struct {
	ENode
}

func NewContainer() *Container {
	c := &Container{}
	c.Kind = KindContainer
	return c
}
