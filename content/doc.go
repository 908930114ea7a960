// Package content defines the record model shared by the search and
// relatedness engines.
//
// The engines never reach into concrete structs: they depend on the Record
// interface, which exposes a stable ID, a content Kind, and named text
// fields. Two built-in record kinds are provided:
//
//   - Narrative: long-form content with a category, tags, domains, and an
//     evidence-quality label
//   - MentalModel: a mental model with a transformation (its category
//     equivalent), tags, and a complexity label
//
// Cross-kind operations project records onto Card, which carries only the
// fields every kind shares (ID, kind, title, category, tags).
//
// Missing or empty fields are reported as nil by Field, and callers treat
// them as absent rather than erroring; one sparse record must not break
// search over the rest of the pool.
package content
