// Package include resolves "include <path>" records in a [value.Value]
// tree: each such pair is replaced in place with the (recursively
// resolved) tree of the referenced document, splicing zero, one, or many
// pairs into the parent at the include site.
//
// Resolution is driven by a [Loader] collaborator so the filesystem
// concern stays swappable: [OSLoader] reads real files, [MapLoader] serves
// fixtures to tests. [Resolve] enforces the recursion depth ceiling, the
// include-once and file-buffering modes, and the graft rule for include
// pairs that carry their own child entries.
package include
