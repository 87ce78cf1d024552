package filter

import (
	"sort"

	"github.com/wonny/qvscreen/internal/contracts"
)

// Rank orders results by overall score descending, breaking ties by symbol
// ascending so equal scores always list in the same order. The runner never
// admits an unknown overall into the passing list; in the filtered list they
// sort last, among themselves by symbol.
func Rank(results []contracts.ScreeningResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, aKnown := results[i].Overall.Float()
		b, bKnown := results[j].Overall.Float()

		if aKnown != bKnown {
			return aKnown
		}
		if aKnown && a != b {
			return a > b
		}
		return results[i].Symbol < results[j].Symbol
	})
}
