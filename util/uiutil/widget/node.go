package widget

import (
	"container/list"
	"fmt"
	"image"

	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type Node interface {
	fullNode() // ensure that EmbedNode can't be directly assigned to a Node

	Embed() *EmbedNode

	InsertBefore(n Node, mark *EmbedNode)
	Append(n ...Node)
	Remove(child Node)

	LayoutMarked()
	LayoutTree()
	Layout() // set childs positions, don't call childs layout
	ChildsLayoutTree()

	PaintMarked(clip image.Rectangle) image.Rectangle
	PaintTree(clip image.Rectangle) bool
	Paint(clip image.Rectangle)
	ChildsPaintTree(clip image.Rectangle)

	OnChildMarked(child Node, newMarks Marks)
	OnInputEvent(ev interface{}, p mathutil.PointF, hit bool) event.Handle
}

//----------

// Doesn't allow embed to be assigned to a Node directly, which prevents a range of programming mistakes. This is the node other widgets should inherit from.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

type NodeKind int

const (
	KindLeaf       NodeKind = iota
	KindContainer           // childs are part of the content extent
	KindDecorative          // style markers, never part of the content extent
)

func (k NodeKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindDecorative:
		return "decorative"
	}
	return "leaf"
}

//----------

type EmbedNode struct {
	Pos     mathutil.PointF // relative to the parent
	Size    mathutil.PointF
	Kind    NodeKind
	Wrapper Node
	Parent  *EmbedNode

	marks  Marks
	childs list.List
	elem   *list.Element
}

//----------

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

// Only the root node should need to set the wrapper explicitly.
func (en *EmbedNode) SetWrapperForRoot(n Node) {
	en.Wrapper = n
}

//----------

func (en *EmbedNode) AbsPos() mathutil.PointF {
	p := en.Pos
	for u := en.Parent; u != nil; u = u.Parent {
		p = p.Add(u.Pos)
	}
	return p
}

func (en *EmbedNode) AbsRect() mathutil.RectF {
	return mathutil.RF(en.AbsPos(), en.Size)
}

// Clip rectangle for the childs of this node, in image coordinates.
func (en *EmbedNode) childsClip(clip image.Rectangle) image.Rectangle {
	if en.HasAnyMarks(MarkCrop) {
		return clip.Intersect(en.AbsRect().ToRectFloorCeil())
	}
	return clip
}

//----------

func (en *EmbedNode) SetPos(p mathutil.PointF) {
	if en.Pos == p {
		return
	}
	en.Pos = p
	en.markMoved()
}

func (en *EmbedNode) SetSize(s mathutil.PointF) {
	if en.Size == s {
		return
	}
	en.Size = s
	en.markMoved()
}

// The old area needs to be repainted, which only the parent can do.
func (en *EmbedNode) markMoved() {
	if en.Parent != nil {
		en.Parent.MarkNeedsPaint()
	} else {
		en.MarkNeedsPaint()
	}
}

//----------

func (en *EmbedNode) Visible() bool {
	return !en.HasAnyMarks(MarkHidden)
}

func (en *EmbedNode) SetVisible(v bool) {
	if v == en.Visible() {
		return
	}
	if v {
		en.marks.Remove(MarkHidden)
	} else {
		en.marks.Add(MarkHidden)
	}
	en.markMoved()
}

//----------

// If a node wants its InsertBefore implementation to be used, the wrapper must be set.
func (en *EmbedNode) Append(nodes ...Node) {
	for _, n := range nodes {
		if en.Wrapper != nil {
			en.Wrapper.InsertBefore(n, nil)
		} else {
			en.InsertBefore(n, nil)
		}
	}
}

func (en *EmbedNode) InsertBefore(child Node, next *EmbedNode) {
	childe := child.Embed()

	if childe == en {
		panic("inserting into itself")
	}
	if childe.Parent != nil {
		panic("element already has a parent")
	}

	// insert in list and get element
	var elem *list.Element
	if next == nil {
		elem = en.childs.PushBack(childe)
	} else {
		// ensure next element is a child of this node
		if next.Parent != en {
			panic("next is not a child of this node")
		}

		elem = en.childs.InsertBefore(childe, next.elem)
	}
	if elem == nil {
		panic("element not inserted")
	}

	childe.elem = elem
	childe.Parent = en
	childe.Wrapper = child // auto set the wrapper

	en.MarkNeedsLayoutAndPaint()
}

//----------

func (en *EmbedNode) Remove(child Node) {
	childe := child.Embed()
	if childe.Parent != en {
		panic("not a child of this node")
	}
	en.childs.Remove(childe.elem)
	childe.elem = nil
	childe.Parent = nil

	en.MarkNeedsLayoutAndPaint()
}

func (en *EmbedNode) RemoveAll() {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		c := elemEmbed(e)
		c.elem = nil
		c.Parent = nil
	}
	en.childs.Init()

	en.MarkNeedsLayoutAndPaint()
}

//----------

func elemEmbed(e *list.Element) *EmbedNode {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode)
}
func elemWrapper(e *list.Element) Node {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode).Wrapper
}

//----------

func (en *EmbedNode) FirstChild() *EmbedNode {
	return elemEmbed(en.childs.Front())
}
func (en *EmbedNode) LastChild() *EmbedNode {
	return elemEmbed(en.childs.Back())
}

//----------

func (en *EmbedNode) IterateWrappersReverse(f func(Node) bool) {
	for e := en.childs.Back(); e != nil; e = e.Prev() {
		if !f(elemWrapper(e)) {
			break
		}
	}
}

//----------

// Iterate2 family functions: iterate all without break possibility.

func (en *EmbedNode) Iterate2(f func(*EmbedNode)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemEmbed(e))
	}
}
func (en *EmbedNode) IterateWrappers2(f func(Node)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemWrapper(e))
	}
}

//----------

func (en *EmbedNode) ChildsWrappers() []Node {
	w := []Node{}
	en.IterateWrappers2(func(c Node) {
		w = append(w, c)
	})
	return w
}

//----------

func (en *EmbedNode) HasAnyMarks(m Marks) bool {
	return en.marks.HasAny(m)
}

func (en *EmbedNode) AddMarks(m Marks) {
	en.markUp(m, nil, 0)
}

func (en *EmbedNode) RemoveMarks(m Marks) {
	// direcly non-removable marks
	u := MarkNeedsPaint | MarkNeedsLayout |
		MarkChildNeedsPaint | MarkChildNeedsLayout
	if m.HasAny(u) {
		panic(fmt.Sprintf("mark not directly removable: %v", u))
	}
	en.marks.Remove(m)
}

//----------

func (en *EmbedNode) markUp(m Marks, child Node, childChangedMarks Marks) {
	old := en.marks
	en.marks |= m
	changed := en.marks ^ old

	// this node is a parent, run callback as soon as it gets marked (now)
	if en.Wrapper != nil && child != nil && childChangedMarks != 0 {
		en.Wrapper.OnChildMarked(child, childChangedMarks)
	}

	if en.Parent != nil && changed != 0 {
		// setup marks to add to parent
		var u Marks
		if changed.HasAny(MarkNeedsPaint | MarkChildNeedsPaint) {
			u.Add(MarkChildNeedsPaint)
		}
		if changed.HasAny(MarkNeedsLayout | MarkChildNeedsLayout) {
			u.Add(MarkChildNeedsLayout)
		}

		// mark parent
		en.Parent.markUp(u, en.Wrapper, changed)
	}
}

func (en *EmbedNode) OnChildMarked(child Node, newMarks Marks) {
}

//----------

func (en *EmbedNode) MarkNeedsLayout() {
	en.AddMarks(MarkNeedsLayout)
}
func (en *EmbedNode) MarkNeedsPaint() {
	en.AddMarks(MarkNeedsPaint)
}
func (en *EmbedNode) MarkNeedsLayoutAndPaint() {
	en.AddMarks(MarkNeedsLayout | MarkNeedsPaint)
}

//----------

func (en *EmbedNode) TreeNeedsPaint() bool {
	return en.HasAnyMarks(MarkNeedsPaint | MarkChildNeedsPaint)
}

func (en *EmbedNode) TreeNeedsLayout() bool {
	return en.HasAnyMarks(MarkNeedsLayout | MarkChildNeedsLayout)
}

//----------

func (en *EmbedNode) LayoutMarked() {
	if en.HasAnyMarks(MarkNeedsLayout) {
		en.Wrapper.LayoutTree()
	} else if en.HasAnyMarks(MarkChildNeedsLayout) {
		en.marks.Remove(MarkChildNeedsLayout)
		en.IterateWrappers2(func(c Node) {
			c.LayoutMarked()
		})
	}
}

func (en *EmbedNode) LayoutTree() {
	en.marks.Remove(MarkNeedsLayout | MarkChildNeedsLayout)
	en.Wrapper.Layout()
	en.Wrapper.ChildsLayoutTree()
}

func (en *EmbedNode) Layout() {
}

func (en *EmbedNode) ChildsLayoutTree() {
	en.IterateWrappers2(func(c Node) {
		c.LayoutTree()
	})
}

//----------

// Paints the marked nodes. Returns the union of the painted areas.
func (en *EmbedNode) PaintMarked(clip image.Rectangle) image.Rectangle {
	u := image.Rectangle{}
	if en.HasAnyMarks(MarkNeedsPaint) {
		if en.Wrapper.PaintTree(clip) {
			u = u.Union(en.AbsRect().ToRectFloorCeil().Intersect(clip))
		}
	} else if en.HasAnyMarks(MarkChildNeedsPaint) {
		en.marks.Remove(MarkChildNeedsPaint)
		if !en.Visible() {
			return u
		}
		cclip := en.childsClip(clip)
		en.IterateWrappers2(func(c Node) {
			r := c.PaintMarked(cclip)
			u = u.Union(r)
		})
	}
	return u
}

func (en *EmbedNode) PaintTree(clip image.Rectangle) bool {
	en.marks.Remove(MarkNeedsPaint | MarkChildNeedsPaint)

	if !en.Visible() {
		return false
	}

	en.Wrapper.Paint(clip)
	en.Wrapper.ChildsPaintTree(en.childsClip(clip))
	return true
}

func (en *EmbedNode) Paint(clip image.Rectangle) {
}

func (en *EmbedNode) ChildsPaintTree(clip image.Rectangle) {
	en.IterateWrappers2(func(c Node) {
		// clear marks of the subtree even if nothing is visible
		c.PaintTree(clip)
	})
}

//----------

func (en *EmbedNode) OnInputEvent(ev interface{}, p mathutil.PointF, hit bool) event.Handle {
	return event.NotHandled
}

//----------

type Marks uint16

func (m *Marks) Add(u Marks)        { *m |= u }
func (m *Marks) Remove(u Marks)     { *m &^= u }
func (m Marks) Mask(u Marks) Marks  { return m & u }
func (m Marks) HasAny(u Marks) bool { return m.Mask(u) > 0 }

//----------

const (
	MarkNeedsPaint Marks = 1 << iota
	MarkNeedsLayout

	MarkChildNeedsPaint
	MarkChildNeedsLayout

	MarkHidden // not painted, not hit, not part of the content extent
	MarkCrop   // childs are clipped to the node rectangle (paint and hit test)
)
