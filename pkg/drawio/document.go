// Package drawio interprets draw.io (mxGraph) diagram XML as a semantic
// graph: typed individuals, typed arrows between them, and plain literal
// shapes. The interpretation conventions are those used when sketching
// ontology instance data in a visual editor: a node's type is declared by a
// child cell labeled with the ontology namespace prefix, the node's own
// label is the individual's human identifier, and arrows carry property
// names on edge-label cells.
package drawio

import (
	"encoding/xml"

	"github.com/ricodraw/ricodraw/pkg/errors"
)

// Cell is a raw diagram element. Cells are extracted once from the input
// tree and never mutated.
type Cell struct {
	ID     string    `xml:"id,attr"`
	Value  *string   `xml:"value,attr"` // nil when the attribute is absent
	Style  string    `xml:"style,attr"`
	Parent string    `xml:"parent,attr"`
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Geom   *Geometry `xml:"mxGeometry"`
}

// Geometry is a cell's bounding geometry. Edge cells carry endpoint points
// instead of a box; any of the box attributes may be absent.
type Geometry struct {
	X      *float64 `xml:"x,attr"`
	Y      *float64 `xml:"y,attr"`
	Width  *float64 `xml:"width,attr"`
	Height *float64 `xml:"height,attr"`
	Points []Point  `xml:"mxPoint"`
}

// Point is an edge endpoint coordinate tagged by role ("sourcePoint" or
// "targetPoint"). Coordinates may be relative to a containing group.
type Point struct {
	As string  `xml:"as,attr"`
	X  float64 `xml:"x,attr"`
	Y  float64 `xml:"y,attr"`
}

// The expected document shape is mxfile → diagram → mxGraphModel → root →
// a flat sequence of mxCell elements. draw.io keeps all cells flat under
// root and expresses nesting through parent attributes.
type mxFile struct {
	XMLName  xml.Name    `xml:"mxfile"`
	Diagrams []mxDiagram `xml:"diagram"`
}

type mxDiagram struct {
	Model *mxGraphModel `xml:"mxGraphModel"`
}

type mxGraphModel struct {
	Root *mxRoot `xml:"root"`
}

type mxRoot struct {
	Cells []Cell       `xml:"mxCell"`
	Other []unexpected `xml:",any"`
}

type unexpected struct {
	XMLName xml.Name
}

// Document holds the decoded cell list with id and parent indexes.
type Document struct {
	cells    []*Cell
	byID     map[string]*Cell
	children map[string][]*Cell
}

// ParseDocument decodes raw draw.io XML into a Document. It fails with an
// EMPTY_DIAGRAM error when the graph-model root is absent or has no cells,
// and with MALFORMED_DIAGRAM when the root contains a non-cell element or
// the XML cannot be decoded at all.
func ParseDocument(data []byte) (*Document, error) {
	var file mxFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedDiagram, err, "decode draw.io XML")
	}
	if len(file.Diagrams) == 0 || file.Diagrams[0].Model == nil || file.Diagrams[0].Model.Root == nil {
		return nil, errors.New(errors.ErrCodeEmptyDiagram, "the draw.io XML defines no graph model")
	}
	root := file.Diagrams[0].Model.Root
	if len(root.Other) > 0 {
		return nil, errors.New(errors.ErrCodeMalformedDiagram,
			"expecting an element with tag 'mxCell', but had tag %q", root.Other[0].XMLName.Local)
	}
	if len(root.Cells) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDiagram, "the draw.io XML defines an empty graph")
	}

	doc := &Document{
		cells:    make([]*Cell, len(root.Cells)),
		byID:     make(map[string]*Cell, len(root.Cells)),
		children: make(map[string][]*Cell),
	}
	for i := range root.Cells {
		c := &root.Cells[i]
		doc.cells[i] = c
		doc.byID[c.ID] = c
		if c.Parent != "" {
			doc.children[c.Parent] = append(doc.children[c.Parent], c)
		}
	}
	return doc, nil
}

// Cells returns all cells in document order.
func (d *Document) Cells() []*Cell {
	return d.cells
}

// CellByID looks up a cell by id.
func (d *Document) CellByID(id string) (*Cell, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// ChildrenOf returns the cells whose parent attribute names id, in document
// order.
func (d *Document) ChildrenOf(id string) []*Cell {
	return d.children[id]
}

// isTopLevel reports whether a cell sits directly on a diagram layer rather
// than inside a group. Layer cells carry no geometry, so a parent without
// geometry (or with no parent cell at all) marks the top level.
func (d *Document) isTopLevel(c *Cell) bool {
	p, ok := d.byID[c.Parent]
	return !ok || p.Geom == nil
}

// bounds returns a cell's bounding box. Every box attribute must be present;
// a missing one is a structural error naming the cell.
func bounds(c *Cell) (rect, error) {
	g := c.Geom
	if g == nil {
		return rect{}, errors.New(errors.ErrCodeMalformedDiagram,
			"expecting the cell with id %q to have an mxGeometry sub-element", c.ID)
	}
	for attr, v := range map[string]*float64{"x": g.X, "y": g.Y, "width": g.Width, "height": g.Height} {
		if v == nil {
			return rect{}, errors.New(errors.ErrCodeMalformedDiagram,
				"expecting the mxGeometry element of the cell with id %q to have a %q attribute", c.ID, attr)
		}
	}
	return rect{x: *g.X, y: *g.Y, w: *g.Width, h: *g.Height}, nil
}

// endpoint returns the recorded start or end point of an edge cell, or nil
// when no such point is present. Absence is legitimate for edge ends locked
// to a node, so no error is raised here.
func endpoint(c *Cell, role string) *point {
	if c.Geom == nil {
		return nil
	}
	for _, p := range c.Geom.Points {
		if p.As == role {
			return &point{x: p.X, y: p.Y}
		}
	}
	return nil
}

type point struct {
	x, y float64
}

type rect struct {
	x, y, w, h float64
}

// contains reports whether p lies inside r expanded by gap on all sides.
func (r rect) contains(p point, gap float64) bool {
	return r.x-gap <= p.x && p.x <= r.x+r.w+gap &&
		r.y-gap <= p.y && p.y <= r.y+r.h+gap
}

// translate shifts the rectangle by the given origin offset.
func (r rect) translate(o point) rect {
	return rect{x: r.x + o.x, y: r.y + o.y, w: r.w, h: r.h}
}
