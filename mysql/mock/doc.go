/*
Package mock provides an in-memory implementation of the mysql driver
capability set (Connector, Conn, Cursor) with configurable results, failure
injection, and call recording for tests. It never touches a database.
*/
package mock
