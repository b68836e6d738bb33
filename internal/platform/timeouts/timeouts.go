// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between commands and makes the
// durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionIdle is the default idle lifetime of a browser selection session.
const SessionIdle = 30 * time.Minute

// SessionSweep is how often expired selection sessions are collected.
const SessionSweep = time.Minute
