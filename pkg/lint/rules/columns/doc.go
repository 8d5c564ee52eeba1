// Package columns contains lint rules for COLUMNS(...) expressions and
// star modifier lists (EXCLUDE, REPLACE, RENAME).
//
// Rules:
//   - CL01 columns.duplicate-name: name list repeats a column
//   - CL02 columns.repeated-exclude: a column is excluded more than once
//   - CL03 columns.exclude-conflict: an excluded column is also replaced or renamed
//   - CL04 columns.unused-binding: predicate body never uses its bound name
package columns
