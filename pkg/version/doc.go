// Package version reports the version and VCS revision of the build.
package version
