package typescript

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// reservedWords holds TypeScript keywords plus the primitive type names that
// cannot name a type alias.
var reservedWords = wordSet(`
	break case catch class const continue debugger default delete do else enum
	export extends false finally for function if implements import in instanceof
	interface let new null package private protected public return static super
	switch this throw true try type typeof var void while with yield await
	any boolean never number object string symbol undefined unknown
`)

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

func isReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// isIdentRune reports whether r may appear inside an identifier.
func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func startsWithDigit(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsDigit(r)
}

// escapeReservedWord appends an underscore to reserved words.
func escapeReservedWord(name string) string {
	if isReserved(name) {
		return name + "_"
	}
	return name
}

// needsQuoting reports whether a property key must be written as a string
// literal.
func needsQuoting(name string) bool {
	if name == "" || startsWithDigit(name) || isReserved(name) {
		return true
	}
	return strings.IndexFunc(name, func(r rune) bool { return !isIdentRune(r) }) >= 0
}

// sanitizeIdentifier maps name onto a valid, non-reserved TypeScript
// identifier. Invalid runes become underscores.
func sanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}
	ident := strings.Map(func(r rune) rune {
		if isIdentRune(r) {
			return r
		}
		return '_'
	}, name)
	if startsWithDigit(ident) {
		ident = "_" + ident
	}
	return escapeReservedWord(ident)
}

// propertyKey renders name as an object or type literal key.
func propertyKey(name string) string {
	if needsQuoting(name) {
		return quote(name)
	}
	return name
}

// objectKey renders name as an object literal key. "__proto__" is written as
// a computed key, since the plain and quoted forms set the prototype.
func objectKey(name string) string {
	if name == "__proto__" {
		return "[" + quote(name) + "]"
	}
	return propertyKey(name)
}

// quote renders s as a double-quoted JavaScript string literal. Non-printable
// runes are written as \uXXXX escapes, astral ones as a surrogate pair.
// Invalid UTF-8 bytes become U+FFFD.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
