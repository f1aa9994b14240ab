package ingest

// SheetKey is the reserved RawRow key carrying the source sheet (or report)
// name. It becomes the record's category downstream.
const SheetKey = "_sheet"

// RawRow is one untyped input row, keyed by the header names exactly as they
// appear in the source. No invariants: any field may be missing.
type RawRow map[string]any
