package langsupport

// ModuleDependency lists the dependencies of one logical module.
type ModuleDependency struct {
	Module       string
	Dependencies []string
}

// ParseResult is what a plugin extracts from one file.
type ParseResult struct {
	// Module is the logical module name of the file, empty when the file has none.
	Module string
	// PathDependencies are raw references to be resolved against the known files.
	PathDependencies []string
	// ModuleDependencies are module level dependencies, in discovery order.
	ModuleDependencies []ModuleDependency
}

// IsEmpty reports whether the result carries nothing.
func (r ParseResult) IsEmpty() bool {
	return r.Module == "" && len(r.PathDependencies) == 0 && len(r.ModuleDependencies) == 0
}

// AddModuleDependencies appends deps to the entry of module, creating it if needed.
func (r *ParseResult) AddModuleDependencies(module string, deps ...string) {
	for i := range r.ModuleDependencies {
		if r.ModuleDependencies[i].Module == module {
			r.ModuleDependencies[i].Dependencies = append(r.ModuleDependencies[i].Dependencies, deps...)
			return
		}
	}
	r.ModuleDependencies = append(r.ModuleDependencies, ModuleDependency{
		Module:       module,
		Dependencies: append([]string{}, deps...),
	})
}

// MergeResults combines partial results (for example one per line) in order.
// The last non-empty module name wins.
func MergeResults(results ...ParseResult) ParseResult {
	var merged ParseResult
	for _, r := range results {
		if r.Module != "" {
			merged.Module = r.Module
		}
		merged.PathDependencies = append(merged.PathDependencies, r.PathDependencies...)
		for _, md := range r.ModuleDependencies {
			merged.AddModuleDependencies(md.Module, md.Dependencies...)
		}
	}
	return merged
}
