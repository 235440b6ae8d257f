package config

type RocketMQConfig struct {
	NameServer []string `yaml:"nameserver"`
	Topic      string   `yaml:"topic"`

	Producer Producer `yaml:"producer"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}

// Enabled 未配置 nameserver 时不投递领域事件
func (r *RocketMQConfig) Enabled() bool {
	return len(r.NameServer) > 0
}
