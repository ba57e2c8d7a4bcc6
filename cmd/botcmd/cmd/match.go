package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <message>",
	Short: "Match a message and print its decomposition as JSON",
	Long: `Handles a single message and prints the result as JSON. Exits with an
error when the message does not invoke any command.`,
	Example: `  botcmd match --catalog commands.yaml -g admin '!rolldice 20'`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

type matchResult struct {
	Command   string         `json:"command"`
	Allowed   bool           `json:"allowed"`
	Help      bool           `json:"help,omitempty"`
	Remainder string         `json:"remainder"`
	Args      map[string]any `json:"args,omitempty"`
	Text      string         `json:"text,omitempty"`
}

func runMatch(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	b, err := e.bot(false)
	if err != nil {
		return err
	}

	reply := b.Handle(joinArgs(args), e.cfg.Groups)
	if !reply.Matched {
		return errors.New("no command matched")
	}

	result := matchResult{
		Command: reply.Command,
		Allowed: !reply.Denied,
		Help:    reply.Help,
	}
	switch {
	case reply.Decomposition != nil:
		result.Remainder = reply.Decomposition.Remainder
		result.Args = reply.Decomposition.Args
	case reply.Help || reply.Denied:
		result.Text = reply.Text
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
