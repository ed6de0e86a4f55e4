package reportexport

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/pkg/errors"
)

// Exporter 把一份报表（已序列化的 JSON）写到某个目的地，返回最终位置描述。
type Exporter interface {
	Export(ctx context.Context, name string, data []byte) (string, error)
}

// FileExporter 写本地文件，Dir 为空时写到当前目录。
type FileExporter struct {
	Dir string
}

func (e FileExporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	p := filepath.Join(e.Dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("创建导出目录失败: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("写入报表文件失败: %w", err)
	}
	return p, nil
}

// S3Exporter 通过 s3manager 上传到 Bucket/KeyPrefix+name。
type S3Exporter struct {
	Bucket    string
	KeyPrefix string

	uploader s3manageriface.UploaderAPI
}

// NewS3Exporter 按 region 创建 AWS Session，凭据走默认链（环境变量 / ~/.aws / 实例角色）。
func NewS3Exporter(region, bucket, keyPrefix string) (*S3Exporter, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("bucket 不能为空")
	}

	awsCfg := aws.Config{}
	if region != "" {
		awsCfg.Region = aws.String(region)
	}
	sess, err := session.NewSession(&awsCfg)
	if err != nil {
		return nil, fmt.Errorf("创建 AWS Session 失败: %w", err)
	}
	return NewS3ExporterWithUploader(bucket, keyPrefix, s3manager.NewUploader(sess)), nil
}

func NewS3ExporterWithUploader(bucket, keyPrefix string, uploader s3manageriface.UploaderAPI) *S3Exporter {
	return &S3Exporter{Bucket: bucket, KeyPrefix: keyPrefix, uploader: uploader}
}

func (e *S3Exporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(e.KeyPrefix, name)
	out, err := e.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(e.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload report to s3://%s/%s", e.Bucket, key)
	}
	return out.Location, nil
}
