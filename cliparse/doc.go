/*
Package cliparse reads configuration from flags with environment fallbacks.

Settings:

  - API base URL (-a / API_BASE_URL), defaults to the production backend
  - Session storage path (-s / STORAGE_PATH), defaults to
    ~/.supermarket-list.db
  - Request timeout (-t / REQUEST_TIMEOUT), defaults to 15s

Remaining arguments after the flags are the CLI command and its options.
*/
package cliparse
