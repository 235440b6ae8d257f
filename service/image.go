package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const maxImageSize = 10 << 20 // 10MB

var allowedImageMime = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// DecodedImage base64 图片解码结果
type DecodedImage struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// DecodeImage 解析 data:image/...;base64,xxx，也接受不带前缀的 base64
func DecodeImage(raw string) (*DecodedImage, error) {
	payload := raw
	if strings.HasPrefix(raw, "data:") {
		idx := strings.Index(raw, ";base64,")
		if idx < 0 {
			return nil, fmt.Errorf("%w: missing base64 marker", ErrInvalidImage)
		}
		payload = raw[idx+len(";base64,"):]
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > maxImageSize+3 {
		return nil, fmt.Errorf("%w: too large", ErrInvalidImage)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 || len(data) > maxImageSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidImage, len(data))
	}

	// MIME 校验（读取前 512 bytes）
	contentType := http.DetectContentType(data)
	ext, ok := allowedImageMime[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, contentType)
	}

	// 只读尺寸，不解码全图
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return &DecodedImage{
		Data:        data,
		ContentType: contentType,
		Ext:         ext,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

// ObjectKey recipe/2006/01/02/<uuid>.<ext>
func (img *DecodedImage) ObjectKey(now time.Time) string {
	return fmt.Sprintf("recipe/%s/%s.%s", now.Format("2006/01/02"), uuid.NewString(), img.Ext)
}
