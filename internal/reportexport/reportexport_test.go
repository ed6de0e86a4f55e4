package reportexport

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	input *s3manager.UploadInput
	body  []byte
}

func (f *fakeUploader) Upload(in *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	return f.UploadWithContext(context.Background(), in, opts...)
}

func (f *fakeUploader) UploadWithContext(ctx aws.Context, in *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	f.input = in
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = b
	return &s3manager.UploadOutput{Location: "https://" + aws.StringValue(in.Bucket) + ".s3.amazonaws.com/" + aws.StringValue(in.Key)}, nil
}

func TestS3Exporter_Export(t *testing.T) {
	up := &fakeUploader{}
	e := NewS3ExporterWithUploader("reports", "toggl/2026", up)

	loc, err := e.Export(context.Background(), "details-1.json", []byte(`[{"row_number":1}]`))
	require.NoError(t, err)
	require.Equal(t, "https://reports.s3.amazonaws.com/toggl/2026/details-1.json", loc)
	require.Equal(t, "toggl/2026/details-1.json", aws.StringValue(up.input.Key))
	require.Equal(t, "application/json", aws.StringValue(up.input.ContentType))
	require.Equal(t, `[{"row_number":1}]`, string(up.body))
}

func TestNewS3Exporter_RequiresBucket(t *testing.T) {
	_, err := NewS3Exporter("us-west-2", " ", "")
	require.Error(t, err)
}

func TestFileExporter_Export(t *testing.T) {
	dir := t.TempDir()
	p, err := FileExporter{Dir: filepath.Join(dir, "out")}.Export(context.Background(), "weekly.json", []byte(`{}`))
	require.NoError(t, err)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(b))
}
