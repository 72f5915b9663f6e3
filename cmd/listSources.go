package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mallardduck/version-drift-tool/internal/cmd/versioncheck"
	"github.com/spf13/cobra"

	helpers "github.com/mallardduck/version-drift-tool/internal/cmd"
)

// listSourcesCmd represents the listSources command
var listSourcesCmd = &cobra.Command{
	Use:   "listSources [projectRoot]",
	Short: "List every readable version source without judging consistency",
	Long: `Discovers the same version sources checkVersions compares, prints them as a
table, and always exits zero. Useful for seeing what the checker would read
before wiring it into a pipeline.`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 1 || len(args) == 0 {
			return nil
		}

		if helpers.IsDataFromStdin() {
			return errors.New("does not accept input from stdin")
		}

		return errors.New("you must provide either 0 or 1 arguments")
	},
	Run: listSourcesHandler,
}

func init() {
	rootCmd.AddCommand(listSourcesCmd)
	listSourcesCmd.Flags().Bool("json", false, "Output results in JSON format")
	addSourcePathFlags(listSourcesCmd)
}

func listSourcesHandler(cmd *cobra.Command, args []string) {
	projectRoot := resolveProjectRoot(args)

	report := versioncheck.CheckVersions(projectRoot, resolveSourceOptions(cmd))

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		versioncheck.OutputSourcesJSON(os.Stdout, report.Sources)
		return
	}

	if len(report.Sources) == 0 {
		fmt.Println("No version sources found.")
		return
	}

	versioncheck.OutputSourcesTable(os.Stdout, &report)
}
