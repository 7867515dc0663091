/*
Package db opens the local SQLite database that backs the session store.

The database is a single key-value table standing in for the browser's
localStorage: two rows hold the saved user id and display name. The driver
is modernc.org/sqlite, so no CGo is required.

	conn, err := db.Open(cfg.StoragePath)

Open creates the file and schema on first use and is safe to call against
an existing database.
*/
package db
