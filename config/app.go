package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

// Jwt 访问令牌配置，ExpiresIn 单位秒
type Jwt struct {
	Secret    string `json:"secret" yaml:"secret"`
	ExpiresIn int64  `json:"expires_in" yaml:"expires_in"`
}
