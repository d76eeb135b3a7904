package nav

import "github.com/matzehuels/focusgrid/pkg/geom"

// NodeID addresses a layout node inside a [Tree].
type NodeID int

// NoNode is the parent of the root.
const NoNode NodeID = -1

// Occupant is the content of an occupied cell. The set of implementations is
// closed: [Element] and [Sublayout]. Code that needs to branch on the kind
// implements [OccupantVisitor], so adding a kind breaks every visitor at
// compile time instead of falling through a default case.
type Occupant interface {
	// Area returns the rect the occupant covers in its layout.
	Area() geom.Rect
	// Accept calls the visitor method matching the occupant's kind.
	Accept(v OccupantVisitor)
}

// OccupantVisitor dispatches on the occupant kind.
type OccupantVisitor interface {
	VisitElement(e *Element)
	VisitSublayout(s *Sublayout)
}

// Element is a focusable leaf.
type Element struct {
	FocusID string
	Rect    geom.Rect
}

// Area implements Occupant.
func (e *Element) Area() geom.Rect { return e.Rect }

// Accept implements Occupant.
func (e *Element) Accept(v OccupantVisitor) { v.VisitElement(e) }

// Sublayout embeds a child node.
type Sublayout struct {
	LayoutID string
	Node     NodeID
	Rect     geom.Rect
}

// Area implements Occupant.
func (s *Sublayout) Area() geom.Rect { return s.Rect }

// Accept implements Occupant.
func (s *Sublayout) Accept(v OccupantVisitor) { v.VisitSublayout(s) }

// kindProbe records which kind an occupant is.
type kindProbe struct {
	element   *Element
	sublayout *Sublayout
}

func (k *kindProbe) VisitElement(e *Element)     { k.element = e }
func (k *kindProbe) VisitSublayout(s *Sublayout) { k.sublayout = s }

func probe(o Occupant) kindProbe {
	var k kindProbe
	o.Accept(&k)
	return k
}

// AsElement returns o as an Element when it is one.
func AsElement(o Occupant) (*Element, bool) {
	k := probe(o)
	return k.element, k.element != nil
}

// AsSublayout returns o as a Sublayout when it is one.
func AsSublayout(o Occupant) (*Sublayout, bool) {
	k := probe(o)
	return k.sublayout, k.sublayout != nil
}
