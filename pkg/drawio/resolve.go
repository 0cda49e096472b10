package drawio

import (
	"strings"

	"github.com/ricodraw/ricodraw/pkg/errors"
	"github.com/ricodraw/ricodraw/pkg/rico"
)

// DefaultMaxGap is the default endpoint proximity tolerance in pixels.
const DefaultMaxGap = 10

// ResolveOptions controls arrow endpoint resolution.
type ResolveOptions struct {
	// Strict requires every arrow end to be explicitly locked to a node.
	// No geometric guessing is attempted.
	Strict bool

	// MaxGap is the proximity tolerance in pixels for unlocked arrow ends.
	// An endpoint matches a shape when it lies within the shape's bounding
	// box expanded by MaxGap on all sides.
	MaxGap float64
}

// Arrows resolves every classified arrow edge into a typed Arrow record.
// Source and target are resolved independently: an explicit link wins; in
// non-strict mode a recorded endpoint coordinate falls back to proximity
// search over individuals and literal shapes, in document order. A resolved
// source must belong to an individual established during classification.
func (t *Tree) Arrows(opts ResolveOptions) ([]Arrow, error) {
	out := make([]Arrow, 0, len(t.arrows))
	for _, ac := range t.arrows {
		arrow, err := t.resolveArrow(ac, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, arrow)
	}
	return out, nil
}

func (t *Tree) resolveArrow(ac arrowCell, opts ResolveOptions) (Arrow, error) {
	sourceCell, err := t.resolveEndpoint(ac, sourceEnd, opts)
	if err != nil {
		return Arrow{}, err
	}
	source, err := t.endpointValue(sourceCell, ac, sourceEnd)
	if err != nil {
		return Arrow{}, err
	}
	if _, ok := t.identifiers[source]; !ok {
		return Arrow{}, errors.New(errors.ErrCodeSourceNotIndividual,
			"the source %q of the arrow with label %q is not an individual in the diagram", source, ac.label)
	}

	targetCell, err := t.resolveEndpoint(ac, targetEnd, opts)
	if err != nil {
		return Arrow{}, err
	}
	target, err := t.endpointValue(targetCell, ac, targetEnd)
	if err != nil {
		return Arrow{}, err
	}

	return Arrow{Name: stripPrefix(ac.label), Source: source, Target: target}, nil
}

// end distinguishes the two arrow endpoints; it selects the link attribute,
// the recorded point, and the error code to report.
type end int

const (
	sourceEnd end = iota
	targetEnd
)

func (e end) String() string {
	if e == sourceEnd {
		return "source"
	}
	return "target"
}

func (e end) code() errors.Code {
	if e == sourceEnd {
		return errors.ErrCodeNoSource
	}
	return errors.ErrCodeNoTarget
}

func (t *Tree) resolveEndpoint(ac arrowCell, e end, opts ResolveOptions) (*Cell, error) {
	linkID := ac.cell.Source
	pt := ac.start
	if e == targetEnd {
		linkID = ac.cell.Target
		pt = ac.end
	}

	if linkID != "" {
		cell, ok := t.doc.CellByID(linkID)
		if !ok {
			return nil, errors.New(errors.ErrCodeMalformedDiagram, "no cell with id %q", linkID)
		}
		return cell, nil
	}

	if opts.Strict {
		return nil, errors.New(e.code(),
			"the mxCell with label %q (id %s) seems to be an arrow, but has no %s; "+
				"lock the arrow to a node in the diagram, or edit the underlying XML to add a %s attribute, "+
				"or run without strict mode to resolve endpoints by proximity",
			ac.label, ac.cell.ID, e, e)
	}
	if pt == nil {
		return nil, errors.New(e.code(),
			"the mxCell with label %q (id %s) seems to be an arrow, but has no %s point to resolve; "+
				"lock the arrow to a node in the diagram, or edit the underlying XML to indicate the %s",
			ac.label, ac.cell.ID, e, e)
	}

	abs, err := t.absolutePoint(ac.cell, *pt)
	if err != nil {
		return nil, err
	}
	if cell := t.cellCloseTo(abs, opts.MaxGap); cell != nil {
		return cell, nil
	}
	return nil, errors.New(e.code(),
		"the mxCell with label %q (id %s) seems to be an arrow, but no shape lies within %g pixels of its %s point; "+
			"consider increasing the max gap, or lock the arrow to a node in the diagram",
		ac.label, ac.cell.ID, opts.MaxGap, e)
}

// cellCloseTo finds the first classified shape, individuals before literal
// shapes and each in document order, whose expanded bounding box contains p.
func (t *Tree) cellCloseTo(p point, gap float64) *Cell {
	for _, ic := range t.individuals {
		if ic.box.contains(p, gap) {
			return ic.cell
		}
	}
	for _, lc := range t.literals {
		if lc.box.contains(p, gap) {
			return lc.cell
		}
	}
	return nil
}

// endpointValue derives an arrow endpoint's value from its resolved cell: a
// type cell yields its parent node's label (the individual's identifier),
// anything else yields its own label (a literal).
func (t *Tree) endpointValue(cell *Cell, ac arrowCell, e end) (string, error) {
	if cell.Value == nil {
		return "", errors.New(e.code(),
			"the %s of the arrow with label %q resolved to the cell with id %q, which has no label", e, ac.label, cell.ID)
	}
	value := ExtractText(*cell.Value)
	if !strings.HasPrefix(value, rico.NamespacePrefix) {
		return value, nil
	}
	parent, ok := t.doc.CellByID(cell.Parent)
	if !ok || parent.Value == nil {
		return "", errors.New(e.code(),
			"the %s of the arrow with label %q resolved to the type cell with id %q, which has no labeled parent", e, ac.label, cell.ID)
	}
	return ExtractText(*parent.Value), nil
}

// absolutePoint translates an edge endpoint recorded relative to the edge's
// containing group into absolute coordinates.
func (t *Tree) absolutePoint(c *Cell, p point) (point, error) {
	origin, err := t.parentOrigin(c)
	if err != nil {
		return point{}, err
	}
	return point{x: p.x + origin.x, y: p.y + origin.y}, nil
}

// absoluteBox translates a shape's bounding box the same way.
func (t *Tree) absoluteBox(c *Cell, box rect) (rect, error) {
	origin, err := t.parentOrigin(c)
	if err != nil {
		return rect{}, err
	}
	return box.translate(origin), nil
}

// parentOrigin walks the ownership chain upward, accumulating each group's
// own position, until a cell sits directly on a diagram layer. The layer is
// origin-relative, so the walk terminates there. A visited set guards
// against cyclic parent references, which well-formed documents never
// contain.
func (t *Tree) parentOrigin(c *Cell) (point, error) {
	var origin point
	visited := map[string]struct{}{c.ID: {}}
	cur := c
	for !t.doc.isTopLevel(cur) {
		parent, _ := t.doc.CellByID(cur.Parent)
		if _, seen := visited[parent.ID]; seen {
			return point{}, errors.New(errors.ErrCodeMalformedDiagram,
				"cyclic parent references involving the cell with id %q", parent.ID)
		}
		visited[parent.ID] = struct{}{}
		if parent.Geom.X != nil {
			origin.x += *parent.Geom.X
		}
		if parent.Geom.Y != nil {
			origin.y += *parent.Geom.Y
		}
		cur = parent
	}
	return origin, nil
}

// stripPrefix removes the ontology namespace prefix from an arrow label,
// tolerating surrounding whitespace. Labels without the prefix pass through
// and fail vocabulary validation later.
func stripPrefix(label string) string {
	if idx := strings.Index(label, rico.NamespacePrefix); idx >= 0 {
		return strings.TrimSpace(label[idx+len(rico.NamespacePrefix):])
	}
	return strings.TrimSpace(label)
}
