// Package vocabulary holds the IRIs the activity and search queries match
// against: RDF and SKOS core terms plus the thesaurus model's own classes
// and properties.
package vocabulary
