package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"
)

func pngDataURL(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeImage(t *testing.T) {
	img, err := DecodeImage(pngDataURL(t, 3, 2))
	if err != nil {
		t.Fatalf("DecodeImage error: %v", err)
	}
	if img.ContentType != "image/png" || img.Ext != "png" {
		t.Fatalf("unexpected type %s/%s", img.ContentType, img.Ext)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("unexpected size %dx%d", img.Width, img.Height)
	}

	key := img.ObjectKey(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	if !strings.HasPrefix(key, "recipe/2024/05/06/") || !strings.HasSuffix(key, ".png") {
		t.Fatalf("unexpected object key %s", key)
	}
}

func TestDecodeImage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not base64", raw: "data:image/png;base64,@@@"},
		{name: "missing marker", raw: "data:image/png,abc"},
		{name: "empty", raw: ""},
		{name: "text payload", raw: "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello world"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeImage(tt.raw); !errors.Is(err, ErrInvalidImage) {
				t.Fatalf("want ErrInvalidImage, got %v", err)
			}
		})
	}
}
