package version

// set by -ldflags at build time
var (
	GitRevision      = "unknown"
	PredictorVersion = "dev"
)
