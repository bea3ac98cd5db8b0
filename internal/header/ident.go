package header

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// identPrefix is prepended when a stem does not start with a valid
// C identifier character.
const identPrefix = "img_"

// DeriveIdent maps a filename stem to the base identifier used for
// every symbol in the generated header. Hyphens and spaces become
// underscores; a stem whose first character cannot start a C
// identifier gets the img_ prefix. Other punctuation passes through
// untouched, so a stem like "a.b" still yields an invalid identifier.
func DeriveIdent(stem string) string {
	ident := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, stem)

	first, _ := utf8.DecodeRuneInString(ident)
	if ident == "" || (!unicode.IsLetter(first) && first != '_') {
		ident = identPrefix + ident
	}
	return ident
}
