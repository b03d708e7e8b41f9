package main

import (
	"github.com/spf13/cobra"

	"github.com/Alfex4936/kolaw/kolaw"
)

var amendCmd = &cobra.Command{
	Use:   "amend <find> <replace>",
	Short: "Draft a 타법개정문 replacing <find> with <replace>",
	Long: `Draft one amendment statement per 법률 that contains <find>.

Examples:
  kolaw-cli amend 위원회 협의회
  kolaw-cli amend 위원회 달걀 -o json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, client, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		res, err := kolaw.Amend(cmd.Context(), client, args[0], args[1], kolaw.WithLogger(log))
		if err != nil {
			return err
		}
		return writeOut(cmd, res)
	},
}
