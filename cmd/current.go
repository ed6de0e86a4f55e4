package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "显示正在计时的时间记录",
		RunE:  runCurrent,
	}

	rootCmd.AddCommand(cmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, _, err := newClient()
	if err != nil {
		return err
	}

	te, err := c.TimeEntries.Current(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "current 失败：", err)
		return err
	}
	if te == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "当前没有正在计时的记录")
		return nil
	}
	return printJSON(cmd.OutOrStdout(), te)
}
