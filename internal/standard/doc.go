// Package standard provides the foundational types for motivational
// standards tables.
//
// This package contains type definitions and the leaf-level cell
// parsers. All other internal packages import standard; standard
// imports nothing internal. This keeps it the foundational layer with
// no circular dependencies.
//
// Key design constraints:
//   - Time values are integer hundredths of a second, never floats.
//     Comparison and ordering checks work on the integer scalar only.
//   - Parse failures are values, not panics. A malformed cell produces
//     a typed error that the validator converts into a Flag; the
//     enclosing row is always retained.
//   - All JSON tags use snake_case.
package standard
