package wizard

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// DigestLength is the number of hex characters of a merge digest.
const DigestLength = 10

// SanitizeTitle turns an arbitrary string into a legal sheet title: NFC
// normalised, without illegal or control characters, without leading or
// trailing apostrophes and spaces, and at most models.MaxTitleLength UTF-16
// units long. It returns "" when nothing legal remains.
func SanitizeTitle(title string) string {
	title = norm.NFC.String(title)
	title = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(models.IllegalTitleChars, r) {
			return -1
		}
		return r
	}, title)
	return truncateTitle(trimTitle(title), models.MaxTitleLength)
}

func trimTitle(title string) string {
	return strings.Trim(title, "' ")
}

// truncateTitle cuts a title to at most n UTF-16 units without splitting a
// character.
func truncateTitle(title string, n int) string {
	if models.TitleLength(title) <= n {
		return title
	}
	units := 0
	for i, r := range title {
		size := utf16.RuneLen(r)
		if size < 0 {
			size = 1
		}
		if units+size > n {
			return trimTitle(title[:i])
		}
		units += size
	}
	return title
}

// titleSet tracks titles in use. Titles are compared case-insensitively
// because spreadsheet applications and common file systems do.
type titleSet map[string]bool

func (s titleSet) has(title string) bool { return s[strings.ToLower(title)] }
func (s titleSet) add(title string)      { s[strings.ToLower(title)] = true }

// uniqueTitle returns title, or title with " (2)", " (3)"... appended when it
// is already taken. The title part is shortened to keep the result legal.
func uniqueTitle(title string, taken titleSet) string {
	if !taken.has(title) {
		return title
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate := truncateTitle(title, models.MaxTitleLength-len(suffix)) + suffix
		if !taken.has(candidate) {
			return candidate
		}
	}
}

// sheetDigest returns the hex digest of a sheet's content and title. Attempts
// above 1 salt the digest so identical sheets still get distinct names.
func sheetDigest(content []byte, title string, attempt int) string {
	h := sha1.New()
	h.Write(content)
	h.Write([]byte(title))
	if attempt > 1 {
		fmt.Fprintf(h, "#%d", attempt)
	}
	return hex.EncodeToString(h.Sum(nil))[:DigestLength]
}

// mergeTitle returns the collision resistant title "{digest}_{title}" of a
// merged sheet. The title part is sanitised and truncated; the digest never is.
func mergeTitle(content []byte, title string, taken titleSet) string {
	titlePart := truncateTitle(SanitizeTitle(title), models.MaxTitleLength-DigestLength-1)
	for attempt := 1; ; attempt++ {
		candidate := sheetDigest(content, title, attempt) + "_" + titlePart
		if !taken.has(candidate) {
			return candidate
		}
	}
}
