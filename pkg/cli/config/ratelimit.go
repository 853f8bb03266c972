package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/pagegate/pkg/utils/ratelimit"
	"github.com/urfave/cli/v3"
)

type RateLimit struct {
	limit  int64
	window time.Duration
}

func (x *RateLimit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "rate-limit",
			Usage:       "Number of API requests allowed per identity per window",
			Category:    "Rate limit",
			Sources:     cli.EnvVars("PAGEGATE_RATE_LIMIT"),
			Value:       ratelimit.DefaultLimit,
			Destination: &x.limit,
		},
		&cli.DurationFlag{
			Name:        "rate-limit-window",
			Usage:       "Length of the fixed rate limit window",
			Category:    "Rate limit",
			Sources:     cli.EnvVars("PAGEGATE_RATE_LIMIT_WINDOW"),
			Value:       ratelimit.DefaultWindow,
			Destination: &x.window,
		},
	}
}

func (x *RateLimit) NewLimiter() *ratelimit.Limiter {
	return ratelimit.New(int(x.limit), x.window)
}

func (x *RateLimit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("limit", x.limit),
		slog.Any("window", x.window),
	)
}
