/*
Package logging offers the structured logging collaborator used by task
packages in this SDK.

The package exposes a small interface with convenience methods for common log
levels (Info, Warn, Error, Debug, Trace). The default implementation is backed
by logrus; callers can swap in their own implementation to capture emitted
diagnostics in tests.
*/
package logging
