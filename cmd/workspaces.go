package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "列出当前 token 可访问的工作区",
		RunE:  runWorkspaces,
	}

	rootCmd.AddCommand(cmd)
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, _, err := newClient()
	if err != nil {
		return err
	}

	workspaces, err := c.Workspaces.List(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "workspaces 失败：", err)
		return err
	}
	return printJSON(cmd.OutOrStdout(), workspaces)
}
