// Package errors provides typed error values for pigment.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Container errors: the stored blob failed integrity checks (ErrFrameTooShort, ErrAuthFailed)
//   - Field errors: a single decoded setting was unusable (ErrInvalidPercent, ErrInvalidColor)
//   - Storage errors: reading or writing the persisted blob failed (ErrStorageWrite)
//   - Input errors: a command was given a setting or path it cannot use (ErrUnknownSetting)
//
// Container and field errors never reach end users. The store recovers from
// them by substituting defaults. Storage write errors are returned from every
// setter, since the in-memory value has already changed.
//
// # Usage
//
//	if err := st.SetHashSource(ctx, identity.ByFullPath); err != nil {
//	    if errors.Is(err, perrors.ErrStorageWrite) {
//	        // Retry or warn
//	    }
//	}
package errors
