// Package fmerrors provides error definitions for path resolution and file
// monitoring.
//
// Sentinel errors can be matched with [errors.Is]. Errors raised by the
// underlying filesystem are never wrapped with these sentinels; they pass
// through to the caller unchanged.
package fmerrors
