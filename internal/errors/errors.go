package errors

import "errors"

// Container errors indicate the persisted blob failed integrity checks.
var (
	// ErrBadEncoding indicates the blob is not valid base64.
	ErrBadEncoding = errors.New("stored settings are not valid base64")

	// ErrFrameTooShort indicates the blob is shorter than nonce plus tag.
	ErrFrameTooShort = errors.New("stored settings frame is too short")

	// ErrAuthFailed indicates the authentication tag did not match.
	ErrAuthFailed = errors.New("stored settings failed authentication")

	// ErrDecompress indicates the decrypted payload is not valid deflate data.
	ErrDecompress = errors.New("stored settings could not be decompressed")

	// ErrInvalidKeyLength indicates the embedded key has an unexpected length.
	ErrInvalidKeyLength = errors.New("invalid symmetric key length")
)

// Field errors indicate that a single setting could not be decoded or validated.
var (
	// ErrInvalidPercent indicates a percentage outside 0..100 or not an integer.
	ErrInvalidPercent = errors.New("percentage must be an integer between 0 and 100")

	// ErrInvalidHashSource indicates an unknown hash source tag.
	ErrInvalidHashSource = errors.New("unknown hash source")

	// ErrInvalidColor indicates a color string that does not parse.
	ErrInvalidColor = errors.New("invalid color")

	// ErrEmptyColorList indicates a color list with no entries.
	ErrEmptyColorList = errors.New("color list is empty")

	// ErrInvalidFlag indicates a boolean field that is neither "1" nor "0".
	ErrInvalidFlag = errors.New("flag must be 0 or 1")

	// ErrInvalidVersion indicates a malformed format version.
	ErrInvalidVersion = errors.New("invalid format version")

	// ErrReservedCharacter indicates a value containing a codec separator.
	ErrReservedCharacter = errors.New("value contains a reserved separator character")

	// ErrMalformedEntry indicates an entry without a tag or with a non-numeric tag.
	ErrMalformedEntry = errors.New("malformed settings entry")
)

// Storage errors indicate a failure reading or writing the persisted blob.
var (
	// ErrStorageRead indicates the blob could not be read from storage.
	ErrStorageRead = errors.New("failed to read stored settings")

	// ErrStorageWrite indicates the blob could not be written to storage.
	ErrStorageWrite = errors.New("failed to write stored settings")

	// ErrWatchUnsupported indicates the storage backend cannot report changes.
	ErrWatchUnsupported = errors.New("storage backend does not support watching")
)

// Input errors.
var (
	// ErrUnknownSetting indicates a setting name that the CLI does not recognise.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrPathNotFound indicates a configured path does not exist.
	ErrPathNotFound = errors.New("path does not exist")
)
