// Package paths locates the directories a host application resolves its
// relative paths against.
//
// The default base directory is the directory holding the running
// executable, with the working directory as a fallback.
package paths
