/*
Package session holds the authenticated user identity.

The store is pure state plus storage glue: no network calls originate here.
On construction it restores the identity from the local database; login and
registration handlers call SetUser on success, and Logout wipes both the
in-memory identity and the durable rows.

A nil Current() means unauthenticated, and the builder and viewer workflows
gate on exactly that.
*/
package session
