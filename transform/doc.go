// Package transform composes the whole document pipeline: include
// resolution, template expansion, translation/profile/variable
// substitution, and expression evaluation, applied to one [value.Value]
// tree in the fixed order the document model requires.
//
// Each stage is independently invocable through its own package; Pipeline
// exists so a caller that wants the full simplification in one call
// doesn't have to wire the six stages together itself. Every stage logs
// one debug record via [log/slog] before it runs, so a caller with
// "--log-level=debug" can see progress through a large document.
package transform
