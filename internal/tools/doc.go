// Package tools defines the tool descriptor model, the registry the
// orchestration loop invokes tools through, and the argument normalization
// pipeline (datetime alias resolution, numeric coercion, defaults, output
// sanitization). Subpackages register the concrete tools.
package tools
