package engagement

import (
	"sort"

	"github.com/katalvlaran/kata/activity"
)

// TopCategories returns, for every user, the category with the most
// activities of any type. Ties go to the lexicographically smallest
// category. The result is sorted by user ID.
func TopCategories(activities []activity.Activity) []UserCategory {
	counts := make(map[string]map[string]int)
	for _, a := range activities {
		byCat, ok := counts[a.UserID]
		if !ok {
			byCat = make(map[string]int)
			counts[a.UserID] = byCat
		}
		byCat[a.Category]++
	}

	out := make([]UserCategory, 0, len(counts))
	for user, byCat := range counts {
		best := UserCategory{UserID: user}
		for cat, n := range byCat {
			if n > best.Count || (n == best.Count && cat < best.Category) {
				best.Category, best.Count = cat, n
			}
		}
		out = append(out, best)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out
}
