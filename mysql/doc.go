/*
Package mysql provides workflow task clients for running statements against a
MySQL database.

Two independent tasks are exposed: ExecuteTask runs one statement and reports
the number of affected rows; FetchTask runs one statement and returns its
rows in a selectable shape (tuple-like, map-like, or a caller-supplied
RowBuilder). Each invocation opens a fresh connection, optionally commits,
and always releases the connection before returning. Construction-time
settings act as defaults that per-invocation options may override.
*/
package mysql
