package vocabulary

// Namespace is the base IRI of the thesaurus model.
const Namespace = "http://onto.fel.cvut.cz/ontologies/application/termit/pojem/"

// Standard namespaces.
const (
	RDFNamespace     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace    = "http://www.w3.org/2000/01/rdf-schema#"
	SKOSNamespace    = "http://www.w3.org/2004/02/skos/core#"
	DCTermsNamespace = "http://purl.org/dc/terms/"
)

// Core predicates.
const (
	RDFType            = RDFNamespace + "type"
	RDFSLabel          = RDFSNamespace + "label"
	SKOSPrefLabel      = SKOSNamespace + "prefLabel"
	SKOSAltLabel       = SKOSNamespace + "altLabel"
	SKOSDefinition     = SKOSNamespace + "definition"
	DCTermsTitle       = DCTermsNamespace + "title"
	DCTermsDescription = DCTermsNamespace + "description"
)

// Asset classes.
const (
	// ClassTerm is the type of thesaurus terms.
	ClassTerm = SKOSNamespace + "Concept"

	ClassVocabulary = Namespace + "slovnik"
	ClassResource   = Namespace + "zdroj"

	// ClassSnapshot marks a frozen historical copy of an asset. Snapshots
	// never appear in feeds or search results.
	ClassSnapshot = Namespace + "verze-objektu"
)

// Model properties.
const (
	// PropInVocabulary links a term to the vocabulary that contains it.
	PropInVocabulary = Namespace + "je-pojmem-ze-slovniku"
)

// DefaultLabelPredicates are the predicates recognized as an asset's label.
var DefaultLabelPredicates = []string{SKOSPrefLabel, DCTermsTitle}
