// Package version holds the cdxingest release version.
package version

// CDXIngestVersion is the current release version, you should update this variable when doing a release
var CDXIngestVersion = "0.3.0"
