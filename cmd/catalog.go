package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manas360/booking-service/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [themes|environments|modules]",
	Short: "Print the static reference catalogs as JSON",
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := map[string]any{
		"themes":       catalog.GroupThemes,
		"environments": catalog.VREnvironments,
		"modules":      catalog.CBTModules,
	}
	if len(args) > 0 {
		section, ok := out[args[0]]
		if !ok {
			return fmt.Errorf("unknown catalog: %s", args[0])
		}
		out = map[string]any{args[0]: section}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
