package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wangdayong228/toggl-client/internal/config"
	togglsdk "github.com/wangdayong228/toggl-client/pkg/toggl-sdk"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "togglctl",
	Short: "Toggl Track 命令行客户端",
	Long:  "togglctl 基于 toggl-sdk 访问 Toggl Track API：列出工作区与项目、查看计时、拉取并导出报表。",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "", "配置文件路径（YAML，可选；apiToken 缺省时读取 TOGGL_API_TOKEN）")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出请求与重试的调试日志")
}

// Execute 入口
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

// newClient 加载配置并创建 SDK 客户端。
func newClient() (*togglsdk.Client, *config.Config, error) {
	cfg := config.LoadConfigFromFile(configPath)
	c, err := togglsdk.New(cfg.SDKConfig(), togglsdk.WithLogger(newLogger()))
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// resolveWorkspace 命令行参数优先，其次取配置文件中的 workspaceId。
func resolveWorkspace(flagValue int64, cfg *config.Config) (int64, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	if cfg != nil && cfg.WorkspaceID > 0 {
		return cfg.WorkspaceID, nil
	}
	return 0, fmt.Errorf("需要通过 --workspace 或配置项 workspaceId 指定工作区")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
