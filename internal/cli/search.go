package cli

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/matzehuels/focusgrid/pkg/nav"
)

// focusEntry is a focusable element and the layout path that holds it.
type focusEntry struct {
	focusID string
	path    string
}

// focusEntries lists every element in tree, layout by layout.
func focusEntries(tree *nav.Tree) []focusEntry {
	var out []focusEntry
	for id := nav.NodeID(0); int(id) < tree.Len(); id++ {
		path := strings.Join(tree.Path(id), "/")
		for _, o := range tree.Occupants(id) {
			if e, ok := nav.AsElement(o); ok {
				out = append(out, focusEntry{focusID: e.FocusID, path: path})
			}
		}
	}
	return out
}

// searchFocus ranks entries against query, best match first. Ties keep the
// tree order. An empty query matches nothing.
func searchFocus(entries []focusEntry, query string) []focusEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.focusID
	}
	ranks := fuzzy.RankFindNormalizedFold(query, ids)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]focusEntry, len(ranks))
	for i, r := range ranks {
		out[i] = entries[r.OriginalIndex]
	}
	return out
}
