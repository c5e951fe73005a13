package argscan

import "sort"

// Distance computes the weighted edit distance between a and b under w,
// allowing insertion, deletion, substitution, and adjacent transposition.
// This is the "optimal string alignment" variant of Damerau-Levenshtein:
// each position participates in at most one transposition, which is all
// flag-name correction needs and keeps the recurrence a single DP pass.
func Distance(a, b string, w Weights) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
	}
	for i := 0; i <= n; i++ {
		d[i][0] = i * w.Deletion
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j * w.Insertion
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if ra[i-1] == rb[j-1] {
				d[i][j] = d[i-1][j-1]
				continue
			}
			best := d[i-1][j] + w.Deletion
			if v := d[i][j-1] + w.Insertion; v < best {
				best = v
			}
			if v := d[i-1][j-1] + w.Substitution; v < best {
				best = v
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if v := d[i-2][j-2] + w.Transposition; v < best {
					best = v
				}
			}
			d[i][j] = best
		}
	}
	return d[n][m]
}

type correction struct {
	name string
	dist int
}

// suggestCorrections returns every candidate whose weighted distance from
// input is within opts.Threshold, sorted by ascending distance and then by
// the candidates' original order (a stable sort preserves ties).
func suggestCorrections(input string, candidates []string, opts DistanceOptions) []string {
	var found []correction
	for _, c := range candidates {
		if dist := Distance(input, c, opts.Weights); dist <= opts.Threshold {
			found = append(found, correction{name: c, dist: dist})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.name
	}
	return out
}
