package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbdamask/botcmd/pkg/bot"
	"github.com/jbdamask/botcmd/pkg/ui"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Dispatch messages interactively",
	Long: `Starts an interactive console. Every line is handled like a chat
message sent by a user with the configured groups. Type / to browse the
commands available to those groups.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	b, err := e.bot(true)
	if err != nil {
		return err
	}

	u := ui.New()
	u.DrawBanner(ui.BannerInfo{
		Version:      "v" + Version,
		CommandCount: e.reg.Len(),
		Groups:       e.cfg.Groups,
		HelpCommand:  e.cfg.HelpCommand,
		Catalog:      e.cfg.CatalogPath,
	})
	return bot.NewConsole(b, u, e.cfg.Groups).Run()
}
