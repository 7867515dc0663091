/*
Package viewer implements the saved-lists workflow: fetch everything the
session user owns, then delete individual lists with optimistic local
removal. Per-list totals come from format.Total, identical to the draft
total in the builder.
*/
package viewer
