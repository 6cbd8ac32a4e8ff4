// Package tmpl implements template collection and expansion over a
// [value.Value] tree: a "template" object entry declares a name, a
// parameter list, and a body of pairs; a "use-template" array elsewhere
// in the tree names the template and supplies argument values, and is
// replaced by a parameter-substituted copy of the body.
//
// [Collect] removes (or just records) every template definition from the
// tree; [Expand] then walks the remaining tree looking for use-template
// references and substitutes them, recursing into freshly emitted pairs
// up to a fixed depth and failing on template cycles.
package tmpl
