package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbdamask/botcmd/pkg/catalog"
	"github.com/jbdamask/botcmd/pkg/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check <catalog>...",
	Short: "Validate catalog files",
	Long: `Parses each catalog, builds its commands and registers them in a fresh
registry, reporting unknown strategies, missing names and duplicates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		n, err := checkCatalog(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d commands OK\n", path, n)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d catalogs invalid", failed, len(args))
	}
	return nil
}

func checkCatalog(path string) (int, error) {
	file, err := catalog.Load(path)
	if err != nil {
		return 0, err
	}
	cmds, err := catalog.Build(file)
	if err != nil {
		return 0, err
	}
	reg, err := commands.New(cmds, commands.Options{})
	if err != nil {
		return 0, err
	}
	return reg.Len(), nil
}
