package cmd

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		Short:                 "Print the version of cats",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			hash, ts := getVersionHashAndTimestamp()

			fmt.Fprintf(cmd.OutOrStdout(), "cats version: %s from %s\n", hash, ts)
		},
	}
}

// getVersionHashAndTimestamp returns the last git hash and commit timestamp.
func getVersionHashAndTimestamp() (string, string) {
	hash, timestamp, modified := readBuildInfo()

	if modified || hash == "" {
		return "@latest", time.Now().UTC().Format("2006-01-02T15:04:05Z")
	}

	return hash, timestamp
}

// readBuildInfo returns the commit hash, commit timestamp and whether the binary
// was built from uncommitted changes. `go run` and `go test` carry none of it.
func readBuildInfo() (string, string, bool) {
	var (
		commitHash  string
		commitTS    string
		vcsModified string
	)

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				commitHash = setting.Value
			case "vcs.time":
				commitTS = setting.Value
			case "vcs.modified":
				vcsModified = setting.Value
			}
		}
	}

	return commitHash, commitTS, vcsModified == "true"
}
