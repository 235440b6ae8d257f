package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  debug: true\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !conf.Debug() {
		t.Fatalf("expected debug mode")
	}
	if conf.Server.Http != 8000 {
		t.Fatalf("expected default port 8000, got %d", conf.Server.Http)
	}
	if conf.Media.Root != "media" {
		t.Fatalf("expected default media root, got %q", conf.Media.Root)
	}
	if conf.ShopList.MergeKey != MergeKeyName {
		t.Fatalf("expected default merge key %q, got %q", MergeKeyName, conf.ShopList.MergeKey)
	}
	if conf.RocketMQ.Enabled() {
		t.Fatalf("rocketmq should be disabled without nameserver")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("server: [")); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestNew_DevFile(t *testing.T) {
	path := filepath.Join("..", "configs", "config.dev.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("dev config not found: %v", err)
	}
	conf := New(path)
	if conf.MySQL == nil || conf.MySQL.Database != "foodgram" {
		t.Fatalf("unexpected mysql section: %+v", conf.MySQL)
	}
	if conf.Redis.Addr() != "127.0.0.1:6379" {
		t.Fatalf("unexpected redis addr %q", conf.Redis.Addr())
	}
}

func TestMySQL_Dsn(t *testing.T) {
	m := &MySQL{Host: "db", Port: 3306, UserName: "u", Password: "p", Database: "foodgram"}
	want := "u:p@tcp(db:3306)/foodgram?charset=utf8mb4&parseTime=True&loc=Local"
	if got := m.Dsn(); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}

func TestOssConfig_PublicURL(t *testing.T) {
	o := &OssConfig{Bucket: "b", Endpoint: "oss.example.com"}
	if got := o.PublicURL("recipe/a.png"); got != "https://b.oss.example.com/recipe/a.png" {
		t.Fatalf("unexpected url %q", got)
	}
	o.CdnDomain = "cdn.example.com"
	if got := o.PublicURL("recipe/a.png"); got != "https://cdn.example.com/recipe/a.png" {
		t.Fatalf("unexpected cdn url %q", got)
	}
	if got := o.PublicURL(""); got != "" {
		t.Fatalf("empty key should give empty url, got %q", got)
	}
}
