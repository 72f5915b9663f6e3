package cmd

import (
	"errors"
	"os"

	"github.com/mallardduck/version-drift-tool/internal/cmd/versioncheck"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	helpers "github.com/mallardduck/version-drift-tool/internal/cmd"
	log "github.com/mallardduck/version-drift-tool/internal/logging"
)

// checkVersionsCmd represents the checkVersions command
var checkVersionsCmd = &cobra.Command{
	Use:   "checkVersions [projectRoot]",
	Short: "Verify every version the project declares agrees with the reference",
	Long: `Reads each known version location under the project root (root VERSION file,
UI package manifest, Helm chart definition and appVersion, latest git tag),
takes the first readable one as the reference, and fails when any later
source declares a different value.

Comparison is exact: trimmed, case-sensitive, no semver interpretation.
With fewer than two readable sources there is nothing to enforce and the
command succeeds.`,
	Args: func(_ *cobra.Command, args []string) error {
		// Check that there is either one or zero args
		if len(args) == 1 || len(args) == 0 {
			return nil
		}

		// Check if there is data coming from stdin
		if helpers.IsDataFromStdin() {
			return errors.New("does not accept input from stdin")
		}

		return errors.New("you must provide either 0 or 1 arguments")
	},
	Run: checkVersionsHandler,
}

func init() {
	rootCmd.AddCommand(checkVersionsCmd)
	checkVersionsCmd.Flags().Bool("json", false, "Output results in JSON format")
	addSourcePathFlags(checkVersionsCmd)
}

func checkVersionsHandler(cmd *cobra.Command, args []string) {
	projectRoot := resolveProjectRoot(args)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	report := versioncheck.CheckVersions(projectRoot, resolveSourceOptions(cmd))

	if jsonOutput {
		versioncheck.OutputJSON(os.Stdout, &report)
	} else {
		versioncheck.OutputHuman(os.Stdout, &report)
	}

	if !report.Success {
		os.Exit(1)
	}
}

// addSourcePathFlags registers the flags that override where discovery looks,
// relative to the project root.
func addSourcePathFlags(cmd *cobra.Command) {
	defaults := versioncheck.DefaultOptions()
	cmd.Flags().String("version-file", defaults.VersionFile, "Relative path of the plain-text version file")
	cmd.Flags().String("ui-manifest", defaults.UIManifest, "Relative path of the UI package manifest")
	cmd.Flags().String("chart", defaults.ChartFile, "Relative path of the Helm chart definition")
}

// resolveSourceOptions resolves the discovery paths with the usual precedence:
// flag > VDT_ environment variable > default.
func resolveSourceOptions(cmd *cobra.Command) versioncheck.Options {
	opts := versioncheck.DefaultOptions()

	if value := viper.GetString("version_file"); value != "" {
		opts.VersionFile = value
	}
	if value := viper.GetString("ui_manifest"); value != "" {
		opts.UIManifest = value
	}
	if value := viper.GetString("chart"); value != "" {
		opts.ChartFile = value
	}

	if flag := cmd.Flags().Lookup("version-file"); flag != nil && flag.Changed {
		opts.VersionFile = flag.Value.String()
	}
	if flag := cmd.Flags().Lookup("ui-manifest"); flag != nil && flag.Changed {
		opts.UIManifest = flag.Value.String()
	}
	if flag := cmd.Flags().Lookup("chart"); flag != nil && flag.Changed {
		opts.ChartFile = flag.Value.String()
	}

	return opts
}

// resolveProjectRoot takes the optional positional arg, defaulting to cwd.
func resolveProjectRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	projectRoot, err := os.Getwd()
	if err != nil {
		log.Log.Fatal(err)
	}
	return projectRoot
}
