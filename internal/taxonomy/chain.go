// Package taxonomy holds the pure term hierarchy logic used by the taxonomy service.
package taxonomy

// AncestorFunc returns the ancestors of a term from its immediate parent up to the root.
// Roots and unknown terms have no ancestors.
type AncestorFunc func(termID int64) []int64

// BuildChain returns termIDs with every term preceded by its root-first ancestor chain.
// Non-positive ids are skipped and every id appears once, at its first position.
func BuildChain(termIDs []int64, ancestorsOf AncestorFunc) []int64 {
	ordered := make([]int64, 0, len(termIDs))
	seen := make(map[int64]struct{}, len(termIDs))

	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	for _, id := range termIDs {
		if id <= 0 {
			continue
		}
		ancestors := ancestorsOf(id)
		for i := len(ancestors) - 1; i >= 0; i-- {
			add(ancestors[i])
		}
		add(id)
	}
	return ordered
}

// MissingAncestors returns the ancestors of the selected terms that are not selected themselves,
// deduplicated, in the order they are first encountered.
func MissingAncestors(selected []int64, ancestorsOf AncestorFunc) []int64 {
	have := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		have[id] = struct{}{}
	}

	var missing []int64
	for _, id := range selected {
		for _, ancestor := range ancestorsOf(id) {
			if _, ok := have[ancestor]; ok {
				continue
			}
			have[ancestor] = struct{}{}
			missing = append(missing, ancestor)
		}
	}
	return missing
}
