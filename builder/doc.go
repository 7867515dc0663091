/*
Package builder implements the draft shopping-list workflow.

A Builder owns one in-memory draft: masked input fields, an ordered item
slice, and the pending-removal and save-in-flight flags. The lifecycle is

	empty -> accumulating -> save pending -> saved (draft cleared)

with an error branch at any point that leaves the draft untouched.

Validation failures (missing field, zero quantity) are silent no-ops, a
missing session fails the save before the network is touched, and removal
is a two-step request/confirm so a stray click cannot drop an item.
*/
package builder
