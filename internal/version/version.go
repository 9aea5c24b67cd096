// internal/version/version.go
package version

// Version is the camiconv release version, overridable at link time with
// -ldflags "-X camiconv/internal/version.Version=...".
var Version = "0.3.0"
