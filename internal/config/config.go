package config

import (
	"net/http"
	"strings"
	"time"

	"github.com/nft-rainbow/rainbow-goutils/utils/configutils"
	"github.com/spf13/viper"

	togglsdk "github.com/wangdayong228/toggl-client/pkg/toggl-sdk"
)

// ExportConfig 描述报表导出到 S3 的目标。Bucket 为空表示不上传。
type ExportConfig struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	KeyPrefix string `yaml:"keyPrefix"`
}

// Config 为 togglctl 的配置文件结构（YAML）。
type Config struct {
	// APIToken 为空时回退到环境变量 TOGGL_API_TOKEN
	APIToken   string            `yaml:"apiToken"`
	MaxRetries int               `yaml:"maxRetries"`
	UserAgent  string            `yaml:"userAgent"`
	Headers    map[string]string `yaml:"headers"`
	Timeout    time.Duration     `yaml:"timeout"`

	// WorkspaceID 为命令行未指定 --workspace 时的默认工作区
	WorkspaceID int64 `yaml:"workspaceId"`

	Export ExportConfig `yaml:"export"`
}

// configutils 解码时要求每个字段都有值，可选项在这里给出缺省值
var optionalDefaults = map[string]any{
	"apiToken":         "",
	"maxRetries":       0,
	"userAgent":        "",
	"headers":          map[string]string{},
	"timeout":          time.Duration(0),
	"workspaceId":      int64(0),
	"export.region":    "",
	"export.bucket":    "",
	"export.keyPrefix": "",
}

// LoadConfigFromFile 从 YAML 文件加载配置；path 为空时返回零值配置（只依赖环境变量）。
// 文件里只需写出要覆盖的键，未知键仍会导致加载失败。
func LoadConfigFromFile(path string) *Config {
	if strings.TrimSpace(path) == "" {
		return &Config{}
	}
	for k, v := range optionalDefaults {
		viper.SetDefault(k, v)
	}
	return configutils.MustLoadByFile[Config](path)
}

// SDKConfig 转换为 SDK 配置。token 兜底在这里显式完成一次。
// header 键统一为规范形式，userAgent 覆盖 headers 里的 User-Agent。
func (c Config) SDKConfig() togglsdk.Config {
	token := strings.TrimSpace(c.APIToken)
	if token == "" {
		token = togglsdk.ConfigFromEnv().APIToken
	}

	headers := make(map[string]string, len(c.Headers)+1)
	for k, v := range c.Headers {
		headers[http.CanonicalHeaderKey(k)] = v
	}
	if c.UserAgent != "" {
		headers["User-Agent"] = c.UserAgent
	}

	return togglsdk.Config{
		APIToken:   token,
		MaxRetries: c.MaxRetries,
		Headers:    headers,
		// CLI 没有宿主请求原语，始终走直连传输
		Legacy:  true,
		Timeout: c.Timeout,
	}
}
