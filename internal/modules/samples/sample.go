package samples

import (
	"math/rand"
	"sort"
)

// Sample picks n rows without replacement using a seeded source, so the
// same file, n and seed always give the same rows. Output keeps file order.
func Sample(rows []Row, n int, seed int64) []Row {
	if n <= 0 {
		return nil
	}
	if n >= len(rows) {
		out := make([]Row, len(rows))
		copy(out, rows)
		return out
	}

	picked := rand.New(rand.NewSource(seed)).Perm(len(rows))[:n]
	sort.Ints(picked)

	out := make([]Row, n)
	for i, p := range picked {
		out[i] = rows[p]
	}
	return out
}
