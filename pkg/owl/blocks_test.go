package owl

import (
	"testing"

	"github.com/ricodraw/ricodraw/pkg/drawio"
	"github.com/ricodraw/ricodraw/pkg/errors"
	"github.com/ricodraw/ricodraw/pkg/rico"
)

func testVocab() rico.Vocabulary {
	return rico.New(
		[]string{"Person", "Place"},
		[]string{"hasBirthPlace", "knows"},
		[]string{"birthDate", "name"},
	)
}

func camelSanitizer() Sanitizer {
	return Sanitizer{Scheme: CapUpperCamel, Joiner: strptr("")}
}

func TestAssembleMergesTypesAndFacts(t *testing.T) {
	individuals := []drawio.Individual{
		{Identifier: "Jane Doe", Class: "Person"},
		{Identifier: "Oslo", Class: "Place"},
	}
	arrows := []drawio.Arrow{
		{Name: "hasBirthPlace", Source: "Jane Doe", Target: "Oslo"},
		{Name: "birthDate", Source: "Jane Doe", Target: "1900-01-01"},
	}

	bs, err := Assemble(individuals, arrows, testVocab(), camelSanitizer())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if bs.Len() != 2 {
		t.Fatalf("got %d blocks, want 2", bs.Len())
	}

	jane := bs.Blocks()[0]
	if jane.Key.ID != "JaneDoe" || jane.Key.Label != "Jane Doe" {
		t.Errorf("key = %+v, want {JaneDoe Jane Doe}", jane.Key)
	}
	if _, ok := jane.Types["Person"]; !ok {
		t.Errorf("Jane Doe should have type Person, got %v", jane.Types)
	}

	place := jane.Facts["hasBirthPlace"]
	if place == nil || place.Literal {
		t.Fatalf("hasBirthPlace fact = %+v, want non-literal", place)
	}
	if _, ok := place.Values["Oslo"]; !ok {
		t.Errorf("hasBirthPlace values = %v, want Oslo", place.Values)
	}

	birth := jane.Facts["birthDate"]
	if birth == nil || !birth.Literal {
		t.Fatalf("birthDate fact = %+v, want literal", birth)
	}
	if _, ok := birth.Values["1900-01-01"]; !ok {
		t.Errorf("birthDate values = %v, want raw date string", birth.Values)
	}
}

func TestAssembleUnknownProperty(t *testing.T) {
	arrows := []drawio.Arrow{{Name: "likes", Source: "Jane Doe", Target: "Oslo"}}
	_, err := Assemble(nil, arrows, testVocab(), camelSanitizer())
	if !errors.Is(err, errors.ErrCodeUnknownProperty) {
		t.Fatalf("got %v, want UNKNOWN_PROPERTY", err)
	}
}

func TestAssembleDeduplicatesValues(t *testing.T) {
	individuals := []drawio.Individual{{Identifier: "Jane Doe", Class: "Person"}}
	arrows := []drawio.Arrow{
		{Name: "hasBirthPlace", Source: "Jane Doe", Target: "Oslo"},
		{Name: "hasBirthPlace", Source: "Jane Doe", Target: "Oslo"},
	}

	bs, err := Assemble(individuals, arrows, testVocab(), camelSanitizer())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	fact := bs.Blocks()[0].Facts["hasBirthPlace"]
	if len(fact.Values) != 1 {
		t.Errorf("got %d values, want 1 (deduplicated)", len(fact.Values))
	}
}

func TestAssembleMergesRepeatedIdentifiers(t *testing.T) {
	// Two individuals with the same identifier but different classes land
	// in one block with two types.
	individuals := []drawio.Individual{
		{Identifier: "Jane Doe", Class: "Person"},
		{Identifier: "Jane Doe", Class: "Place"},
	}
	bs, err := Assemble(individuals, nil, testVocab(), camelSanitizer())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if bs.Len() != 1 {
		t.Fatalf("got %d blocks, want 1", bs.Len())
	}
	if got := len(bs.Blocks()[0].Types); got != 2 {
		t.Errorf("got %d types, want 2", got)
	}
}

func TestAssembleArrowCreatesSourceBlock(t *testing.T) {
	// A fact about an entity with no type declaration still gets a block.
	arrows := []drawio.Arrow{{Name: "name", Source: "Jane Doe", Target: "Jane"}}
	bs, err := Assemble(nil, arrows, testVocab(), camelSanitizer())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if bs.Len() != 1 {
		t.Fatalf("got %d blocks, want 1", bs.Len())
	}
	block := bs.Blocks()[0]
	if len(block.Types) != 0 {
		t.Errorf("got %d types, want 0", len(block.Types))
	}
	if block.Facts["name"] == nil {
		t.Errorf("missing name fact: %v", block.Facts)
	}
}

func TestAssembleSanitizationFailureSurfaces(t *testing.T) {
	individuals := []drawio.Individual{{Identifier: "Jane Doe", Class: "Person"}}
	noJoiner := Sanitizer{Scheme: CapUpperCamel}
	_, err := Assemble(individuals, nil, testVocab(), noJoiner)
	if !errors.Is(err, errors.ErrCodeUntreatedSpace) {
		t.Fatalf("got %v, want UNTREATED_SPACE", err)
	}
}
