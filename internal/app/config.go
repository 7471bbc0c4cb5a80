package app

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the storefront client configuration, loadable from
// environment variables (LAREK_ prefix), flags, or YAML config files.
//
// The two URLs are the only externally supplied behavior of the core: the
// API root and the CDN base prepended to relative image paths.
type Config struct {
	APIBaseURL string        `default:"http://localhost:8080/api" usage:"Storefront API base URL" flag:"api-base-url"`
	CDNBaseURL string        `default:"http://localhost:8080/content" usage:"CDN base URL for product images" flag:"cdn-base-url"`
	Timeout    time.Duration `default:"10s" usage:"HTTP request timeout"`
}

// LoadConfig loads configuration from environment variables, flags, and YAML
// config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "LAREK",
		Files:     []string{"storefront.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
