package sqlgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kovka-shop/productseed/pkg/productseed"
)

var (
	validIdentifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	validCharsetPattern    = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// maxIdentifierLength is the MySQL limit for table names.
const maxIdentifierLength = 64

// QuoteLiteral renders s as a single-quoted SQL string literal.
// Single quotes are doubled; nothing else is escaped, so s must come from a
// trusted source such as local filenames.
func QuoteLiteral(s string) string {
	return "'" + EscapeSQLString(s) + "'"
}

// EscapeSQLString doubles every single quote in s.
func EscapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// ValidateIdentifier checks that name can be written unquoted as a table name.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("empty identifier: %w", productseed.ErrInvalidConfig)
	}
	if len(name) > maxIdentifierLength {
		return fmt.Errorf("identifier %q exceeds %d character limit: %w", name, maxIdentifierLength, productseed.ErrInvalidConfig)
	}
	if !validIdentifierPattern.MatchString(name) {
		return fmt.Errorf("%q is not a valid identifier: %w", name, productseed.ErrInvalidConfig)
	}
	return nil
}

// ValidateCharset checks a character set name for SET NAMES.
func ValidateCharset(charset string) error {
	if !validCharsetPattern.MatchString(charset) {
		return fmt.Errorf("%q is not a valid character set name: %w", charset, productseed.ErrInvalidConfig)
	}
	return nil
}
