// Package version carries build metadata, set by ldflags:
//
//	go build -ldflags "-X github.com/doeshing/aish-go/internal/version.Version=v0.1.0"
package version

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
