// Package store owns the settings for the lifetime of a process.
//
// A Store is hydrated once with Load and then read through typed getters.
// Every setter validates its input, swaps in the new value, and saves
// synchronously through a Backend. A save that fails still leaves the new
// value in memory, and the returned error wraps ErrStorageWrite.
//
// Loading never fails. These failures all yield default settings, with
// OutcomeDefaulted and the cause in the LoadReport:
//
//   - the backend cannot be read
//   - the blob is not base64 or is shorter than nonce plus tag
//   - authentication fails or the payload does not inflate
//
// Once the container opens, problems are field-local: an out-of-range
// percentage or a bad color list defaults that one field and is listed in
// LoadReport.FieldErrors. Payloads from an older format version are re-saved
// at the current version.
//
// FileBackend keeps the blob under the "akasha" key of a TOML state file and
// can watch it for writes from other processes. MemoryBackend is for tests
// and one-shot use.
package store
