package service

import (
	"Foodgram/config"
	"context"
	"io"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// Upload 上传本地文件
	Upload(ctx context.Context, localPath, objectKey string) error

	// UploadReader 上传流
	UploadReader(ctx context.Context, reader io.Reader, objectKey, contentType string) error

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// URL 对象的公开访问地址
	URL(objectKey string) string
}

type OssService struct {
	Client *oss.Client
	Config *config.OssConfig
}

func NewOssService(cfg *config.OssConfig) IOssService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &OssService{
		Client: oss.NewClient(ossCfg),
		Config: cfg,
	}
}

// Upload 上传本地文件
func (s *OssService) Upload(ctx context.Context, localPath, objectKey string) error {
	_, err := s.Client.PutObjectFromFile(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Config.Bucket),
		Key:    oss.Ptr(objectKey),
	}, localPath)
	return err
}

// UploadReader 上传 Reader
func (s *OssService) UploadReader(ctx context.Context, reader io.Reader, objectKey, contentType string) error {
	req := &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Config.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	}
	if contentType != "" {
		req.ContentType = oss.Ptr(contentType)
	}
	_, err := s.Client.PutObject(ctx, req)
	return err
}

// Delete 删除对象
func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Config.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

func (s *OssService) URL(objectKey string) string {
	return s.Config.PublicURL(objectKey)
}
