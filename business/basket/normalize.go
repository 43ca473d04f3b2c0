package basket

import "strings"

// itemSetWrapper strips the notation rule-mining tools use when they
// serialize item sets: frozenset(...), set braces, tuple parens and quotes.
var itemSetWrapper = strings.NewReplacer(
	"frozenset(", "",
	"(", "",
	")", "",
	"{", "",
	"}", "",
	"'", "",
	`"`, "",
)

// NormalizeItemSet turns a serialized item set into its items.
//
//	frozenset({'A', 'B'})  -> [A B]
//	{'A','B'}              -> [A B]
//	('A',)                 -> [A]
//	A, B                   -> [A B]
//
// Items are trimmed and empty items are dropped; order is preserved.
func NormalizeItemSet(raw string) []string {
	cleaned := itemSetWrapper.Replace(raw)

	parts := strings.Split(cleaned, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}

// JoinItemSet renders items in the plain comma separated display form.
func JoinItemSet(items []string) string {
	return strings.Join(items, ", ")
}
