package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the loaded course catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		source, err := newSource(cfg.Catalog)
		if err != nil {
			return err
		}
		cat, report, err := source.Load(cmd.Context())
		if err != nil {
			return err
		}

		for _, course := range cat.Courses() {
			fmt.Printf("%-10s %s\n", course.ID, course.Title)
		}
		if report.Skipped > 0 {
			fmt.Printf("(%d malformed records skipped)\n", report.Skipped)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
