package langsupport

import "fmt"

// Module describes pluggable language support.
type Module interface {
	Name() string
	Description() string
	Extensions() []string
	Maturity() MaturityLevel
	// ModuleSeparator separates hierarchy segments of the module names the plugin reports.
	ModuleSeparator() string
	// CandidateSuffixes are appended to raw path references during resolution,
	// e.g. ".ts" or "/index.ts".
	CandidateSuffixes() []string
	// Parse extracts the raw dependencies of one file.
	Parse(ctx *ParseContext) (ParseResult, error)
}

// LineParser is implemented by modules that scan a file one line at a time.
// When present it is used instead of Module.Parse and every line's partial
// result is merged into the file result.
type LineParser interface {
	ParseLine(ctx *ParseContext, line string, lineNumber int) ParseResult
}

// ParseLines runs lp over every line of the current file and merges the
// non-empty partial results in line order.
func ParseLines(ctx *ParseContext, lp LineParser) (ParseResult, error) {
	lines, err := ctx.Lines()
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}
	partials := make([]ParseResult, 0, len(lines))
	for i, line := range lines {
		if partial := lp.ParseLine(ctx, line, i+1); !partial.IsEmpty() {
			partials = append(partials, partial)
		}
	}
	return MergeResults(partials...), nil
}

// MatchesFile reports whether file has one of the module's extensions.
// Extensions without a leading dot are matched against the whole base name.
func MatchesFile(m Module, file string) bool {
	for _, ext := range m.Extensions() {
		if ext == "" {
			continue
		}
		if ext[0] == '.' {
			if len(file) >= len(ext) && file[len(file)-len(ext):] == ext {
				return true
			}
			continue
		}
		if file == ext || (len(file) > len(ext) && file[len(file)-len(ext)-1:] == "/"+ext) {
			return true
		}
	}
	return false
}
