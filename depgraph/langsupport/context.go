package langsupport

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// ContentReader reads file content given a file path.
// This allows the caller to control how files are read.
type ContentReader func(filePath string) ([]byte, error)

// FilesystemContentReader reads files straight from disk.
func FilesystemContentReader() ContentReader {
	return os.ReadFile
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// ParseContext is the per-file input handed to a plugin. A fresh context is
// built for every file; content is read at most once.
type ParseContext struct {
	// RootDir is the scan root on disk.
	RootDir string
	// Files are all scanned files, root-relative with forward slashes.
	Files []string
	// File is the current file, root-relative with forward slashes.
	File string
	// Dir is the directory of File ("." at the root).
	Dir string
	// Ext is the extension of File including the dot.
	Ext string
	// NameResolver remaps a raw reference (configured path mapping).
	NameResolver func(string) string
	// Options holds plugin specific settings from configuration.
	Options map[string]any

	reader  ContentReader
	content func() ([]byte, error)
}

// NewParseContext builds the context for one file.
func NewParseContext(rootDir string, files []string, file string, reader ContentReader, nameResolver func(string) string, options map[string]any) *ParseContext {
	if reader == nil {
		reader = FilesystemContentReader()
	}
	if nameResolver == nil {
		nameResolver = func(s string) string { return s }
	}

	ctx := &ParseContext{
		RootDir:      rootDir,
		Files:        files,
		File:         file,
		Dir:          path.Dir(file),
		Ext:          path.Ext(file),
		NameResolver: nameResolver,
		Options:      options,
		reader:       reader,
	}

	var data []byte
	var readErr error
	loaded := false
	ctx.content = func() ([]byte, error) {
		if !loaded {
			data, readErr = reader(filepath.Join(rootDir, filepath.FromSlash(file)))
			loaded = true
		}
		return data, readErr
	}
	return ctx
}

// BaseName returns the last path element of File.
func (c *ParseContext) BaseName() string {
	return path.Base(c.File)
}

// Content returns the file content, reading it on first use.
func (c *ParseContext) Content() ([]byte, error) {
	return c.content()
}

// Lines returns the file content split on line breaks.
func (c *ParseContext) Lines() ([]string, error) {
	content, err := c.Content()
	if err != nil {
		return nil, err
	}
	return lineBreak.Split(string(content), -1), nil
}

// ReadSibling reads another file relative to the directory of File.
// It is meant for auxiliary inputs such as lock files.
func (c *ParseContext) ReadSibling(name string) ([]byte, error) {
	rel := path.Join(c.Dir, name)
	return c.reader(filepath.Join(c.RootDir, filepath.FromSlash(rel)))
}

// ReadFile reads a root relative file, e.g. a manifest above the current file.
func (c *ParseContext) ReadFile(rel string) ([]byte, error) {
	return c.reader(filepath.Join(c.RootDir, filepath.FromSlash(rel)))
}

// BoolOption reads a boolean plugin option. Missing or non-boolean values are false.
func (c *ParseContext) BoolOption(name string) bool {
	if c.Options == nil {
		return false
	}
	switch v := c.Options[name].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}
