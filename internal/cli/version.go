package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// buildInfo is the version command's JSON output shape.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVarP(&versionFormat, "output", "o", "text", "Output format: text, short, or json")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildInfo{Version: buildVersion, Commit: buildCommit, Date: buildDate}

		switch versionFormat {
		case "short":
			fmt.Println(info.Version)
		case "json":
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Println(string(out))
		case "text":
			fmt.Printf("ktbridge %s\n", info.Version)
			fmt.Printf("  commit: %s\n", info.Commit)
			fmt.Printf("  built:  %s\n", info.Date)
		default:
			return fmt.Errorf("unknown output format %q (want text, short, or json)", versionFormat)
		}
		return nil
	},
}
