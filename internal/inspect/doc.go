// Package inspect compares two resolved settings sets and reports
// differing keys.
//
// Diff is a pure read of both sets: entries come back in ascending lexical
// key order, value comparison is deep so lists compare element-wise, and
// diffing a set against itself reports no changes. Two modes exist:
// default mode lists every key in the union of both sets with unchanged
// keys annotated rather than dropped, unified mode keeps only the keys
// whose value or presence differs.
package inspect
