package version

// Version is the toolkit release string. Overridden at build time via
//
//	go build -ldflags "-X pwsim/internal/version.Version=vX.Y.Z"
var Version = "0.4.1-dev"
