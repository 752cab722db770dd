// Package app holds build-time application metadata.
package app

// Version is the application version, overridden at build time:
//
//	go build -ldflags "-X github.com/cmdtree-tools/cli/internal/app.Version=v1.2.3"
var Version = "dev"
