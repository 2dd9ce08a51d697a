package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/pkg/check"
)

const formatJSON = "json"

// checkInfo represents a checker in JSON output.
type checkInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Tags        []string `json:"tags"`
}

func newChecksCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List built-in style checks",
		Long: `List the built-in battery of style checks with their IDs,
descriptions, default severity, and the violation types they emit.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			checkers := check.DefaultRegistry.Checkers()

			if format == formatJSON {
				return outputChecksJSON(checkers)
			}

			logger := logging.Default()

			if len(checkers) == 0 {
				logger.Info("no checks registered")
				return nil
			}

			logger.Info("available checks")

			for _, c := range checkers {
				logger.Info(fmt.Sprintf("%s (%s)", c.ID(), c.Name()),
					logging.FieldSeverity, c.DefaultSeverity(),
					"description", c.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	return cmd
}

// outputChecksJSON writes checks as JSON to stdout.
func outputChecksJSON(checkers []check.Checker) error {
	infos := make([]checkInfo, 0, len(checkers))
	for _, c := range checkers {
		infos = append(infos, checkInfo{
			ID:          c.ID(),
			Name:        c.Name(),
			Description: c.Description(),
			Severity:    string(c.DefaultSeverity()),
			Tags:        c.Tags(),
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(infos); err != nil {
		return fmt.Errorf("encode checks: %w", err)
	}
	return nil
}
