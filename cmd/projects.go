package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	projectsWorkspace int64
	projectsActive    string
)

func init() {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "列出工作区下的项目",
		RunE:  runProjects,
	}

	cmd.Flags().Int64VarP(&projectsWorkspace, "workspace", "w", 0, "工作区 ID（缺省取配置项 workspaceId）")
	cmd.Flags().StringVar(&projectsActive, "active", "", "过滤项目状态：true / false / both")

	rootCmd.AddCommand(cmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, cfg, err := newClient()
	if err != nil {
		return err
	}
	wid, err := resolveWorkspace(projectsWorkspace, cfg)
	if err != nil {
		return err
	}

	projects, err := c.Workspaces.Projects(ctx, wid, projectsActive)
	if err != nil {
		fmt.Fprintln(os.Stderr, "projects 失败：", err)
		return err
	}
	return printJSON(cmd.OutOrStdout(), projects)
}
