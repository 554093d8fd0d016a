package main

import (
	"runtime"

	"github.com/poricom/poricom/internal/cli/cmd"
	"github.com/poricom/poricom/internal/domain/build"
	"github.com/poricom/poricom/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()
	defer logging.RecoverPanic(logging.NewFromEnv())

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
