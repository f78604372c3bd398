package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// MaxTitleLength is the maximum sheet title length in UTF-16 code units.
const MaxTitleLength = 31

// IllegalTitleChars are the characters a sheet title may not contain.
const IllegalTitleChars = `:\/?*[]`

// ErrSheetTitleInvalid indicates a sheet title the workbook format rejects.
var ErrSheetTitleInvalid = errors.New("invalid sheet title")

// TitleLength returns the length of a title as counted by the workbook
// format (UTF-16 code units).
func TitleLength(title string) int {
	return len(utf16.Encode([]rune(title)))
}

// ValidateTitle checks a title against the workbook format's rules.
func ValidateTitle(title string) error {
	switch {
	case strings.TrimSpace(title) == "":
		return fmt.Errorf("%w: empty", ErrSheetTitleInvalid)
	case TitleLength(title) > MaxTitleLength:
		return fmt.Errorf("%w: %q is longer than %d characters", ErrSheetTitleInvalid, title, MaxTitleLength)
	case strings.ContainsAny(title, IllegalTitleChars):
		return fmt.Errorf("%w: %q contains one of %s", ErrSheetTitleInvalid, title, IllegalTitleChars)
	case strings.HasPrefix(title, "'") || strings.HasSuffix(title, "'"):
		return fmt.Errorf("%w: %q starts or ends with an apostrophe", ErrSheetTitleInvalid, title)
	}
	return nil
}
