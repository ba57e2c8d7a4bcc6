package cmd

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jbdamask/botcmd/pkg/commands"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered commands",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	if e.reg.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No commands registered")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMMAND\tALLOWED\tALLOW\tBLOCK\tDESCRIPTION")
	for _, c := range e.reg.List() {
		var allow, block, desc string
		if c.Groups != nil {
			allow = joinSet(c.Groups.Allow)
			block = joinSet(c.Groups.Block)
		}
		if c.Metadata != nil {
			desc = c.Metadata.Description
		}
		allowed := "no"
		if e.reg.IsAllowed(c.Name, e.cfg.Groups) {
			allowed = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Name, allowed, allow, block, desc)
	}
	return w.Flush()
}

func joinSet(set commands.GroupSet) string {
	names := make([]string, 0, len(set))
	for g := range set {
		names = append(names, g)
	}
	slices.Sort(names)
	return strings.Join(names, ",")
}
