package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	CdnDomain       string `json:"cdn_domain" yaml:"cdn_domain"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}

// PublicURL 对象的外网访问地址
func (o *OssConfig) PublicURL(objectKey string) string {
	if objectKey == "" {
		return ""
	}
	if o.CdnDomain != "" {
		return "https://" + o.CdnDomain + "/" + objectKey
	}
	return "https://" + o.Bucket + "." + o.Endpoint + "/" + objectKey
}
