// Package client is the terminal client's access layer: the JSON-over-HTTP
// backend API (Client, HTTPClient) and the bootstrap of the local SQLite
// store (OpenLocalStore, RunMigrations).
//
// Failures are reported as ErrUnavailable (no response), ErrTimeout
// (deadline passed) or *APIError (status >= 400, carrying the server's
// detail message). A 401 APIError also matches ErrUnauthorized.
package client
