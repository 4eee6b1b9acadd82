package formatters

import (
	"path"
	"sort"
)

var availableColors = []string{
	"lightblue", "lightyellow", "mistyrose", "lightsalmon",
	"lightpink", "lavender", "peachpuff", "plum", "powderblue", "khaki",
	"palegoldenrod", "thistle",
}

// ExtensionColors assigns a fill color to every distinct file extension found
// in names. Names without an extension get no entry.
func ExtensionColors(names []string) map[string]string {
	uniqueExtensions := make(map[string]bool)
	for _, name := range names {
		if ext := path.Ext(name); ext != "" {
			uniqueExtensions[ext] = true
		}
	}

	sortedExtensions := make([]string, 0, len(uniqueExtensions))
	for ext := range uniqueExtensions {
		sortedExtensions = append(sortedExtensions, ext)
	}
	sort.Strings(sortedExtensions)

	extensionColors := make(map[string]string, len(sortedExtensions))
	for i, ext := range sortedExtensions {
		extensionColors[ext] = availableColors[i%len(availableColors)]
	}
	return extensionColors
}
