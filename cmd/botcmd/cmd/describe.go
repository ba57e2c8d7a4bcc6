package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbdamask/botcmd/pkg/commands"
	"github.com/jbdamask/botcmd/pkg/render"
)

var rendererName string

var describeCmd = &cobra.Command{
	Use:   "describe [command]",
	Short: "Render help for one command or the whole index",
	Long: `Renders command metadata the way the bot would answer the help command.
Without an argument every command available to --groups is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "renderer: default, markdown, html or terminal (default from config)")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	var renderer commands.Renderer
	if rendererName != "" {
		if renderer, err = render.ByName(rendererName); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, render.Index(e.reg, e.cfg.Groups, renderer))
		return nil
	}

	name := args[0]
	if !e.reg.Has(name) {
		return fmt.Errorf("unknown command %s", name)
	}
	text, ok := e.reg.StringifyMetadata(name, renderer)
	if !ok {
		return fmt.Errorf("command %s has no metadata", name)
	}
	fmt.Fprintln(out, text)
	return nil
}
