/*
Package api wraps the Supermarket List HTTP backend.

Five operations, each a single JSON round trip:

  - Register: POST /api/users
  - Login: POST /api/login
  - ListsByUser: GET /api/listas?userId=<id>
  - SaveList: POST /api/listas?userId=<id>
  - DeleteList: DELETE /api/listas/<id>

Callers never see status codes: any non-2xx response or transport failure
comes back as *api.Error carrying a user-facing message, extracted from the
server's error body when possible and a fixed fallback otherwise. Every
request carries an X-Request-ID header that is logged alongside failures.

Requests are bounded by the timeout given to New; a backend that never
answers surfaces as a normal *api.Error instead of hanging the caller.
*/
package api
