// Package normalize turns free-form player names into lookup keys.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Name folds case, applies NFKC and collapses inner whitespace, so
// "  Anna   Ivanova" and "ANNA IVANOVA" share a key.
func Name(name string) string {
	name = norm.NFKC.String(name)
	name = strings.Join(strings.Fields(name), " ")
	return folder.String(name)
}
