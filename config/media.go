package config

const (
	MergeKeyName     = "name"
	MergeKeyNameUnit = "name_unit"
)

// Media 本地媒体目录，购物清单 PDF 落在 Root 下
type Media struct {
	Root    string `json:"root" yaml:"root"`
	BaseURL string `json:"base_url" yaml:"base_url"` // 调试模式下的静态路由前缀，如 /media
}

// ShopList 购物清单导出配置
type ShopList struct {
	MergeKey    string  `json:"merge_key" yaml:"merge_key"` // name | name_unit
	FontPath    string  `json:"font_path" yaml:"font_path"` // UTF-8 TTF，为空时使用内置 Go Regular
	FontSize    float64 `json:"font_size" yaml:"font_size"`
	MirrorToOss bool    `json:"mirror_to_oss" yaml:"mirror_to_oss"`
}
