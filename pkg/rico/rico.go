package rico

// NamespacePrefix marks ontology-bearing labels in a diagram. A node labeled
// "rico:Person" declares a type; an edge labeled "rico:hasBirthPlace" names
// a property.
const NamespacePrefix = "rico:"

// OntologyIRI is the published namespace of RiC-O.
const OntologyIRI = "https://www.ica.org/standards/RiC/ontology#"

// ImportIRI is the published RDF document imported by generated ontologies.
const ImportIRI = "https://raw.githubusercontent.com/ICA-EGAD/RiC-O/master/ontology/current-version/RiC-O_1-0.rdf"

// Vocabulary answers membership queries against three fixed name sets:
// classes, object properties, and datatype properties. The zero value is
// empty; use Default for RiC-O 1.0.
type Vocabulary struct {
	classes            map[string]struct{}
	objectProperties   map[string]struct{}
	datatypeProperties map[string]struct{}
}

// New builds a vocabulary from explicit name lists. Order is irrelevant;
// duplicates collapse.
func New(classes, objectProperties, datatypeProperties []string) Vocabulary {
	return Vocabulary{
		classes:            toSet(classes),
		objectProperties:   toSet(objectProperties),
		datatypeProperties: toSet(datatypeProperties),
	}
}

// Default returns the RiC-O 1.0 vocabulary.
func Default() Vocabulary {
	return New(classNames, objectPropertyNames, datatypePropertyNames)
}

// IsClass reports whether name is a known class.
func (v Vocabulary) IsClass(name string) bool {
	_, ok := v.classes[name]
	return ok
}

// IsObjectProperty reports whether name is a known object property.
func (v Vocabulary) IsObjectProperty(name string) bool {
	_, ok := v.objectProperties[name]
	return ok
}

// IsDatatypeProperty reports whether name is a known datatype property.
func (v Vocabulary) IsDatatypeProperty(name string) bool {
	_, ok := v.datatypeProperties[name]
	return ok
}

// IsEmpty reports whether the vocabulary carries no names at all, which is
// the case for the zero value.
func (v Vocabulary) IsEmpty() bool {
	return len(v.classes) == 0 && len(v.objectProperties) == 0 && len(v.datatypeProperties) == 0
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
