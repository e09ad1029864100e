package plan

import (
	"sort"

	"github.com/colqhq/colq/columnar"
)

// DedupePredicates removes duplicate predicates (by column+op+value) and
// sorts the result, giving a stable, canonical order for fingerprinting
// (spec §4.3 point 3: "Filter and column lists are canonicalised
// (sorted) before hashing").
func DedupePredicates(preds []columnar.Predicate) []columnar.Predicate {
	seen := make(map[string]bool, len(preds))
	out := make([]columnar.Predicate, 0, len(preds))
	for _, p := range preds {
		k := p.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// DedupeStrings removes duplicates and sorts, used for columns_backward
// and columns_forward canonicalisation (spec §4.3 point 1).
func DedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// IntersectStrings returns the elements of a that also appear in b,
// in sorted order.
func IntersectStrings(a, b []string) []string {
	bSet := make(map[string]bool, len(b))
	for _, s := range b {
		bSet[s] = true
	}
	out := make([]string, 0, len(a))
	for _, s := range a {
		if bSet[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// UnionStrings returns the sorted, deduplicated union of a and b.
func UnionStrings(a, b []string) []string {
	return DedupeStrings(append(append([]string(nil), a...), b...))
}

// StructRoots returns, for every dotted column name "a.b" in cols, the
// root "a", augmenting visibility so that selecting/struct-accessing the
// root stays valid (spec §4.2 TableSource: "augmented by the set of
// struct roots").
func StructRoots(cols []string) []string {
	roots := map[string]bool{}
	for _, c := range cols {
		for i := 0; i < len(c); i++ {
			if c[i] == '.' {
				roots[c[:i]] = true
				break
			}
		}
	}
	out := make([]string, 0, len(roots))
	for r := range roots {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// FilterByColumnSet splits preds into those whose Column is in set and
// those that are not, used by Join's backward routing (spec §4.3 point
// 2, "Join: partition propagated predicates by which side's
// columns_source contains the predicate column").
func FilterByColumnSet(preds []columnar.Predicate, set []string) (in, out []columnar.Predicate) {
	setMap := make(map[string]bool, len(set))
	for _, s := range set {
		setMap[s] = true
	}
	for _, p := range preds {
		if setMap[p.Column] {
			in = append(in, p)
		} else {
			out = append(out, p)
		}
	}
	return in, out
}
