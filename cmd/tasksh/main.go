package main

import (
	"fmt"
	"runtime"
)

// set by the release build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

func versionString() string {
	return fmt.Sprintf("tasksh %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
