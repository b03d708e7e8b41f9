// Command kolaw-cli drafts 타법개정문 and searches statutes from the terminal.
//
// Usage:
//
//	kolaw-cli amend 위원회 협의회
//	kolaw-cli search "식품 위생" -o json
//	kolaw-cli config init
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "kolaw-cli:", err)
		os.Exit(1)
	}
}
