// Package configs defines pigment's settings and their tagged text encoding.
//
// # Settings
//
// Settings is an immutable value. The With* methods validate their input and
// return an updated copy, so a store can compute the new value, persist it,
// and swap it in.
//
// # Tagged Text Format
//
// Serialize renders one "<tag>:<value>" entry per field, joined by
// EntrySeparator. List values are joined by ListSeparator. Both separators
// are C0 control characters, which never occur in paths, filenames, or color
// syntax; setters reject values that contain them.
//
//	0:2␞1:1␞2:␞3:62␞4:20␞5:0␞6:.git␟go.mod␞7:rgba(229,115,115,1)␟...
//
// Tags are stable wire identifiers. They are never renumbered or reused, and
// new fields take the next free tag. Parse keys off the tag, not the entry
// position:
//
//   - Unknown tags are skipped (data written by a newer version)
//   - Missing tags stay unset (data written by an older version)
//   - A malformed entry is recorded as a FieldError and does not stop parsing
//
// Parse never invents values. Partial.Resolve fills every unset field from
// Defaults and reports which fields were defaulted.
//
// # Format Versions
//
// Tag 0 carries the format version. Version 1 predates the hash source field
// (tag 5); version 2 is current.
//
// # TOML Export
//
// Export and Import convert settings to and from a human-readable TOML
// document for backup and hand editing. Import goes through the same
// sanitizers as Parse.
package configs
