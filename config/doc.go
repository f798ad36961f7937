/*
Package config loads task configuration from a yaml file.

A configuration file carries the connection settings shared by both tasks and
the per-task defaults (query, commit flag, fetch mode, fetch count, cursor
type). Values not present in the file fall back to the same defaults the task
constructors apply.
*/
package config
