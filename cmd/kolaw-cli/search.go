package main

import (
	"github.com/spf13/cobra"

	"github.com/Alfex4936/kolaw/kolaw"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Print the articles mentioning <query>, highlighted",
	Long: `Search every 법률 for <query>. Spaces are ignored when matching, so
"식품 위생" also finds "식품위생".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, client, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		res, err := kolaw.Search(cmd.Context(), client, args[0], kolaw.WithLogger(log))
		if err != nil {
			return err
		}
		return writeOut(cmd, res)
	},
}
