package version

// Version is stamped at release time with
// -ldflags "-X systemsgen/internal/version.Version=...".
var Version = "0.3.1"
