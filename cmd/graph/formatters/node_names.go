package formatters

import (
	"strings"

	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

// BuildNodeNames returns stable, distinct display names for entity names.
// Names that share the same last segment are disambiguated by increasing
// suffix depth.
func BuildNodeNames(names []string, separator string) map[string]string {
	if separator == "" {
		separator = "/"
	}

	display := make(map[string]string, len(names))
	groupedByBase := make(map[string][]string, len(names))
	for _, name := range names {
		base := nameSuffix(name, 1, separator)
		groupedByBase[base] = append(groupedByBase[base], name)
	}

	for base, grouped := range groupedByBase {
		grouped = unique(grouped)
		if len(grouped) == 1 {
			display[grouped[0]] = base
			continue
		}

		for depth := 2; ; depth++ {
			suffixCounts := make(map[string]int, len(grouped))
			exhausted := true
			for _, name := range grouped {
				suffixCounts[nameSuffix(name, depth, separator)]++
				if depth < segmentCount(name, separator) {
					exhausted = false
				}
			}

			allDistinct := true
			for _, name := range grouped {
				if suffixCounts[nameSuffix(name, depth, separator)] > 1 {
					allDistinct = false
					break
				}
			}
			if !allDistinct && !exhausted {
				continue
			}

			for _, name := range grouped {
				display[name] = nameSuffix(name, depth, separator)
			}
			break
		}
	}

	return display
}

func nameSuffix(name string, depth int, separator string) string {
	name = depgraph.StripMarker(name)
	parts := strings.Split(name, separator)
	if depth > len(parts) {
		depth = len(parts)
	}
	return strings.Join(parts[len(parts)-depth:], separator)
}

func segmentCount(name, separator string) int {
	return len(strings.Split(depgraph.StripMarker(name), separator))
}

func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := names[:0:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	return result
}
