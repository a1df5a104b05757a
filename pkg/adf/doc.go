// Package adf models the subset of the Atlassian Document Format produced by
// the converter. Formatting lives on inline leaves as an ordered list of
// marks instead of nested containers, so a bold-italic run is a single Text
// node carrying [Strong, Em].
//
// Block, Inline and Mark are closed unions: only the types declared in this
// package satisfy them. Every node encodes to the JSON shape consumed by
// Atlassian renderers via encoding/json.
package adf
