/*
Package main provides the supermarket-list command, a terminal client for
the Supermarket List shopping API.

# Usage

	supermarket-list [flags] <command> [options]

Typical session:

	supermarket-list register -n "maria silva" -t 11913311054 -e maria@example.com
	supermarket-list create
	supermarket-list lists
	supermarket-list delete 7

# Configuration

All settings have defaults; override with flags or environment variables
(a .env file next to the binary is also read):

  - API_BASE_URL (-a): backend base URL
  - STORAGE_PATH (-s): local session database (default ~/.supermarket-list.db)
  - REQUEST_TIMEOUT (-t): per-request timeout (default 15s)

# Architecture

  - cli: terminal commands and prompts
  - builder: draft list workflow (add, confirm-remove, total, save)
  - viewer: saved lists workflow (fetch, optimistic delete)
  - api: HTTP client for the backend
  - session: authenticated identity, restored from local storage
  - db: SQLite key-value storage behind the session
  - format: capitalization, currency and phone masks, totals
  - cliparse: configuration parsing
  - models: wire and domain types

See package documentation for each component.
*/
package main
