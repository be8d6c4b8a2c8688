/*
Package observability provides tools for monitoring the Logos engine.

It turns engine lifecycle hooks into Prometheus metrics and structured log
lines, and combines several hook sets into one.
*/
package observability
