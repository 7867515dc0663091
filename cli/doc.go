/*
Package cli is the terminal front-end: it maps the web app's pages onto
commands (register, login, logout, whoami, create, lists, delete) and its
modals onto titled blocks on stdout. User-facing text stays in Portuguese
like the product; diagnostics go to slog in the packages underneath.

The create command runs an interactive loop over stdin driving a
builder.Builder; lists and delete drive a viewer.Viewer.
*/
package cli
