package common

import (
	"fmt"

	"github.com/caarlos0/env/v10"

	"github.com/dsh2dsh/gurufocus/client"
)

func NewClient() (*client.Client, error) {
	cfg := struct {
		Token   string `env:"GURUFOCUS_TOKEN,notEmpty"`
		BaseURL string `env:"GURUFOCUS_URL"`
	}{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse gurufocus envs: %w", err)
	}

	var opts []client.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(cfg.BaseURL))
	}
	return client.New(cfg.Token, opts...), nil
}
