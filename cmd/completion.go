package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// PerformingShellCompletion indicates whether or not one of Cobra's hidden
// shell completion commands is being used. Interactive setup (such as terminal
// compatibility handling) should be skipped in that case, since completion
// output is consumed by the shell rather than a user.
var PerformingShellCompletion bool

func init() {
	// Check if one of Cobra's hidden shell completion commands is being used.
	PerformingShellCompletion = len(os.Args) > 1 &&
		(os.Args[1] == cobra.ShellCompRequestCmd ||
			os.Args[1] == cobra.ShellCompNoDescRequestCmd)
}
