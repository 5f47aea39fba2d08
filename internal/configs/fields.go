package configs

import "fmt"

// Tag is the stable wire identifier of a settings field.
type Tag int

// Field tags. Never renumber or reuse a tag.
const (
	TagVersion            Tag = 0
	TagShowSuggestion     Tag = 1
	TagStylesheetPath     Tag = 2
	TagGradientBrightness Tag = 3
	TagGradientDarkness   Tag = 4
	TagHashSource         Tag = 5
	TagProjectIndicators  Tag = 6
	TagLightColors        Tag = 7
	TagDarkColors         Tag = 8
)

// TagMalformed marks a FieldError for an entry whose tag could not be read.
const TagMalformed Tag = -1

// Reserved separators.
const (
	EntrySeparator = '\x1e'
	ListSeparator  = '\x1f'
)

// Both separators must be C0 control characters below the space and must be
// distinct. Violating either makes these constants overflow uint8.
const (
	_ uint8 = ' ' - 1 - EntrySeparator
	_ uint8 = ' ' - 1 - ListSeparator
	_ uint8 = ListSeparator - EntrySeparator - 1
)

const reservedChars = string(EntrySeparator) + string(ListSeparator)

// Field names as used by the CLI and in FieldError.
const (
	FieldVersion            = "version"
	FieldShowSuggestion     = "show-suggestion"
	FieldStylesheetPath     = "stylesheet-path"
	FieldGradientBrightness = "gradient-brightness"
	FieldGradientDarkness   = "gradient-darkness"
	FieldHashSource         = "hash-source"
	FieldProjectIndicators  = "project-indicators"
	FieldLightColors        = "light-colors"
	FieldDarkColors         = "dark-colors"
)

var fieldNames = map[Tag]string{
	TagVersion:            FieldVersion,
	TagShowSuggestion:     FieldShowSuggestion,
	TagStylesheetPath:     FieldStylesheetPath,
	TagGradientBrightness: FieldGradientBrightness,
	TagGradientDarkness:   FieldGradientDarkness,
	TagHashSource:         FieldHashSource,
	TagProjectIndicators:  FieldProjectIndicators,
	TagLightColors:        FieldLightColors,
	TagDarkColors:         FieldDarkColors,
}

// Tags returns every known tag in emission order.
func Tags() []Tag {
	return []Tag{
		TagVersion,
		TagShowSuggestion,
		TagStylesheetPath,
		TagGradientBrightness,
		TagGradientDarkness,
		TagHashSource,
		TagProjectIndicators,
		TagLightColors,
		TagDarkColors,
	}
}

// Name returns the field name for t, or "tag:<n>" for unknown tags.
func (t Tag) Name() string {
	if name, ok := fieldNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag:%d", int(t))
}

// TagForName returns the tag of the named field.
func TagForName(name string) (Tag, bool) {
	for tag, n := range fieldNames {
		if n == name {
			return tag, true
		}
	}
	return 0, false
}

// FieldError records why one field was not decoded.
type FieldError struct {
	Tag Tag
	Raw string
	Err error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v (raw %q)", e.Tag.Name(), e.Err, e.Raw)
}

func (e FieldError) Unwrap() error {
	return e.Err
}
