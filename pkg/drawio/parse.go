package drawio

import (
	"strings"

	"github.com/ricodraw/ricodraw/pkg/errors"
	"github.com/ricodraw/ricodraw/pkg/rico"
)

// edgeLabelMarker identifies the auxiliary child cell that carries an
// arrow's label.
const edgeLabelMarker = "edgeLabel"

// literalStyleToken is the first style token of a plain text shape, which
// the interpreter treats as a literal value rather than an individual.
const literalStyleToken = "text"

// Individual is an ontology entity instance declared by a diagram node. One
// node yields one Individual per type marker in its type cell's label, all
// sharing the node's human identifier.
type Individual struct {
	Identifier string // the node's label, as drawn
	Class      string // ontology class name, prefix stripped
}

// Arrow is a typed, directed fact: a property linking a source individual to
// either another individual (object property) or a literal (datatype
// property). Arrows are produced by endpoint resolution; see Tree.Arrows.
type Arrow struct {
	Name   string // property name, prefix stripped
	Source string
	Target string
}

type individualCell struct {
	cell *Cell
	ind  Individual
	box  rect // absolute bounding box of the owning node
}

type literalCell struct {
	cell *Cell
	box  rect
}

type arrowCell struct {
	cell       *Cell
	start, end *point // raw recorded endpoints; nil when absent
	label      string
}

// Tree is the classified view of one diagram document. All classification
// happens in a single pass at construction; the records are reused by the
// endpoint resolver and never mutated.
type Tree struct {
	doc         *Document
	vocab       rico.Vocabulary
	individuals []individualCell
	arrows      []arrowCell
	literals    []literalCell
	identifiers map[string]struct{} // labels of all established individuals
}

// Interpret parses raw draw.io XML and classifies every cell as an
// individual node, an arrow edge, a plain literal shape, or irrelevant.
// Class names found on type cells are validated against vocab.
func Interpret(data []byte, vocab rico.Vocabulary) (*Tree, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	t := &Tree{
		doc:         doc,
		vocab:       vocab,
		identifiers: make(map[string]struct{}),
	}
	if err := t.classify(); err != nil {
		return nil, err
	}
	return t, nil
}

// Individuals returns all typed individuals in document order.
func (t *Tree) Individuals() []Individual {
	out := make([]Individual, len(t.individuals))
	for i, ic := range t.individuals {
		out[i] = ic.ind
	}
	return out
}

func (t *Tree) classify() error {
	for _, cell := range t.doc.Cells() {
		if cell.Value == nil {
			// No label attribute at all: layers, groups, geometry-only
			// helpers. Irrelevant.
			continue
		}
		value := ExtractText(*cell.Value)

		if value == "" {
			// A labelless cell with an edge-label child is an arrow; one
			// without is dropped silently.
			if label, ok := t.edgeLabel(cell); ok {
				t.recordArrow(cell, label)
			}
			continue
		}

		if !strings.HasPrefix(value, rico.NamespacePrefix) {
			if err := t.recordLiteral(cell); err != nil {
				return err
			}
			continue
		}

		if err := t.recordIndividuals(cell, value); err != nil {
			return err
		}
	}
	return nil
}

// edgeLabel finds the label carried by an arrow's auxiliary child cell.
func (t *Tree) edgeLabel(arrow *Cell) (string, bool) {
	for _, child := range t.doc.ChildrenOf(arrow.ID) {
		if !strings.Contains(child.Style, edgeLabelMarker) {
			continue
		}
		if child.Value == nil {
			continue
		}
		return ExtractText(*child.Value), true
	}
	return "", false
}

func (t *Tree) recordArrow(cell *Cell, label string) {
	t.arrows = append(t.arrows, arrowCell{
		cell:  cell,
		start: endpoint(cell, "sourcePoint"),
		end:   endpoint(cell, "targetPoint"),
		label: label,
	})
}

// recordLiteral records a plain text shape as a literal arrow target. Only
// top-level text shapes count; text nested in a group belongs to that
// group's node.
func (t *Tree) recordLiteral(cell *Cell) error {
	if !styledAsLiteral(cell.Style) || !t.doc.isTopLevel(cell) {
		return nil
	}
	box, err := bounds(cell)
	if err != nil {
		return err
	}
	abs, err := t.absoluteBox(cell, box)
	if err != nil {
		return err
	}
	t.literals = append(t.literals, literalCell{cell: cell, box: abs})
	return nil
}

// recordIndividuals handles a type cell: a cell whose label starts with the
// namespace prefix. Its parent node's label is the individual's identifier,
// and the label may declare several classes via repeated prefix markers.
func (t *Tree) recordIndividuals(cell *Cell, value string) error {
	if cell.Parent == "" {
		return errors.New(errors.ErrCodeMalformedDiagram,
			"found an mxCell with id %q whose value begins with %q but which has no parent",
			cell.ID, rico.NamespacePrefix)
	}
	parent, ok := t.doc.CellByID(cell.Parent)
	if !ok {
		return errors.New(errors.ErrCodeMalformedDiagram, "no cell with id %q", cell.Parent)
	}
	if parent.Value == nil {
		// The parent carries no label: this cell was in fact an arrow whose
		// own label was mistaken for a type declaration. Reclassify it.
		t.recordArrow(cell, value)
		return nil
	}
	identifier := ExtractText(*parent.Value)
	if identifier == "" {
		return nil
	}

	box, err := bounds(parent)
	if err != nil {
		return err
	}
	abs, err := t.absoluteBox(parent, box)
	if err != nil {
		return err
	}

	for _, part := range strings.Split(value, rico.NamespacePrefix) {
		class := strings.TrimSpace(part)
		if class == "" {
			continue
		}
		if !t.vocab.IsClass(class) {
			return errors.New(errors.ErrCodeUnknownClass, "not a RiC-O class: %s", class)
		}
		t.individuals = append(t.individuals, individualCell{
			cell: cell,
			ind:  Individual{Identifier: identifier, Class: class},
			box:  abs,
		})
	}
	t.identifiers[identifier] = struct{}{}
	return nil
}

// styledAsLiteral reports whether a style string marks a plain text shape.
func styledAsLiteral(style string) bool {
	token, _, _ := strings.Cut(style, ";")
	return token == literalStyleToken
}
