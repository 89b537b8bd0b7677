// Package session models a shell session's environment as explicit state.
// All mutation goes through an Environment value handed to the initialization
// functions, never through ambient process-global environment writes.
package session

import (
	"fmt"
	"sort"
	"strings"
)

// PathVar is the name of the executable search path variable
const PathVar = "PATH"

// PathListSeparator separates entries of the executable search path. The
// generated scripts target POSIX shells, so this is a colon on every platform.
const PathListSeparator = ":"

// Environment is an explicit model of a shell session's environment: a
// variable table plus an alias table. Mutations are tracked so callers can
// emit only the definitions a load pass introduced.
type Environment struct {
	vars     map[string]string
	aliases  map[string]string
	modified map[string]bool
}

// New returns an empty Environment
func New() *Environment {
	return &Environment{
		vars:     make(map[string]string),
		aliases:  make(map[string]string),
		modified: make(map[string]bool),
	}
}

// FromEnviron builds an Environment from "KEY=value" pairs as returned by
// os.Environ. The snapshot counts as pristine: nothing is marked modified.
func FromEnviron(environ []string) *Environment {
	e := New()
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		e.vars[name] = value
	}
	return e
}

// Get returns the value of a variable, or "" if unset
func (e *Environment) Get(name string) string {
	return e.vars[name]
}

// Lookup returns the value of a variable and whether it is set
func (e *Environment) Lookup(name string) (string, bool) {
	value, ok := e.vars[name]
	return value, ok
}

// Set defines or replaces a variable
func (e *Environment) Set(name, value string) {
	e.vars[name] = value
	e.modified[name] = true
}

// SetAlias defines or replaces an alias
func (e *Environment) SetAlias(name, value string) {
	e.aliases[name] = value
}

// Alias returns the value of an alias and whether it is defined
func (e *Environment) Alias(name string) (string, bool) {
	value, ok := e.aliases[name]
	return value, ok
}

// PathList returns the entries of the executable search path, in order
func (e *Environment) PathList() []string {
	value := e.vars[PathVar]
	if value == "" {
		return nil
	}
	return strings.Split(value, PathListSeparator)
}

// AppendPath appends dir to the end of the executable search path so that
// previously-defined binaries of the same name keep precedence. Existing
// entries are preserved in order. An entry already present with an identical
// value is not duplicated; AppendPath reports whether dir was added.
func (e *Environment) AppendPath(dir string) bool {
	for _, entry := range e.PathList() {
		if entry == dir {
			return false
		}
	}
	current := e.vars[PathVar]
	if current == "" {
		e.Set(PathVar, dir)
	} else {
		e.Set(PathVar, current+PathListSeparator+dir)
	}
	return true
}

// Modified reports whether a variable has been written since the snapshot
func (e *Environment) Modified(name string) bool {
	return e.modified[name]
}

// ExportLines renders the variables modified since the snapshot, plus all
// aliases, as shell statements suitable for eval in the calling shell.
// Output is sorted for determinism.
func (e *Environment) ExportLines() []string {
	names := make([]string, 0, len(e.modified))
	for name := range e.modified {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names)+len(e.aliases))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("export %s=%s", name, shellQuote(e.vars[name])))
	}

	aliasNames := make([]string, 0, len(e.aliases))
	for name := range e.aliases {
		aliasNames = append(aliasNames, name)
	}
	sort.Strings(aliasNames)
	for _, name := range aliasNames {
		lines = append(lines, fmt.Sprintf("alias %s=%s", name, shellQuote(e.aliases[name])))
	}

	return lines
}

// shellQuote single-quotes s for safe consumption by a POSIX shell
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
