// Package model defines the core data types shared by the extraction engine:
// positioned tokens, reconstructed rows, detected tables, merchandise line
// items, and the shipment record returned to callers.
//
// All types here are plain values with no behavior beyond small helpers.
// Tokens and rows are ephemeral: they are produced per page and consumed
// within a single extraction pass, never persisted.
//
// # Coordinate system
//
// Token coordinates use a top-origin convention: Y grows downward, so
// ascending Y order is top-to-bottom visual order. Sources that report
// bottom-origin PDF user-space coordinates must flip Y before handing
// tokens to the row builder.
package model
