package owl

import (
	"github.com/ricodraw/ricodraw/pkg/drawio"
	"github.com/ricodraw/ricodraw/pkg/errors"
	"github.com/ricodraw/ricodraw/pkg/rico"
)

// Key identifies an entity block: the sanitized identifier used in the
// output, paired with the original label it came from. Lookup only ever
// compares the sanitized component; the label rides along for annotations.
type Key struct {
	ID    string
	Label string
}

// Fact is the accumulated value set for one property of one entity.
type Fact struct {
	// Literal marks a datatype property; its values are kept raw and are
	// type-inferred at serialization. Object property values are sanitized
	// identifiers.
	Literal bool

	// Values deduplicates targets by exact string equality.
	Values map[string]struct{}
}

// Block collects everything declared about one entity: its class
// memberships and its outgoing facts.
type Block struct {
	Key   Key
	Types map[string]struct{}
	Facts map[string]*Fact
}

// BlockSet is an insertion-ordered collection of entity blocks, keyed by
// sanitized identifier.
type BlockSet struct {
	order []*Block
	byID  map[string]*Block
}

// Blocks returns the blocks in insertion order.
func (bs *BlockSet) Blocks() []*Block {
	return bs.order
}

// Len returns the number of blocks.
func (bs *BlockSet) Len() int {
	return len(bs.order)
}

func (bs *BlockSet) get(id, label string) *Block {
	if b, ok := bs.byID[id]; ok {
		return b
	}
	b := &Block{
		Key:   Key{ID: id, Label: label},
		Types: make(map[string]struct{}),
		Facts: make(map[string]*Fact),
	}
	bs.byID[id] = b
	bs.order = append(bs.order, b)
	return b
}

// Assemble merges individuals and arrows into one block per entity.
// Individuals contribute class memberships; arrows contribute facts, with
// the property name validated against the vocabulary and the target
// sanitized for object properties but kept raw for datatype properties.
func Assemble(individuals []drawio.Individual, arrows []drawio.Arrow, vocab rico.Vocabulary, san Sanitizer) (*BlockSet, error) {
	bs := &BlockSet{byID: make(map[string]*Block)}

	for _, ind := range individuals {
		id, err := san.Sanitize(ind.Identifier)
		if err != nil {
			return nil, err
		}
		block := bs.get(id, ind.Identifier)
		block.Types[ind.Class] = struct{}{}
	}

	for _, arrow := range arrows {
		var value string
		var literal bool
		switch {
		case vocab.IsObjectProperty(arrow.Name):
			v, err := san.Sanitize(arrow.Target)
			if err != nil {
				return nil, err
			}
			value = v
		case vocab.IsDatatypeProperty(arrow.Name):
			value = arrow.Target
			literal = true
		default:
			return nil, errors.New(errors.ErrCodeUnknownProperty,
				"an arrow has label %s%s, which is not an object property or datatype property in RiC-O",
				rico.NamespacePrefix, arrow.Name)
		}

		id, err := san.Sanitize(arrow.Source)
		if err != nil {
			return nil, err
		}
		block := bs.get(id, arrow.Source)
		fact, ok := block.Facts[arrow.Name]
		if !ok {
			fact = &Fact{Literal: literal, Values: make(map[string]struct{})}
			block.Facts[arrow.Name] = fact
		}
		fact.Values[value] = struct{}{}
	}

	return bs, nil
}
