package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser via -ldflags; source builds report
// (devel), which also blocks self-update.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aiquest %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
