package usecase

import (
	"time"

	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/infra"
)

const (
	defaultProbeConcurrency = 8
	defaultProbeTimeout     = 15 * time.Second
)

type UseCase struct {
	clients *infra.Clients

	probeConcurrency int
	probeTimeout     time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithProbeConcurrency bounds the fan-out against the upstream API.
func WithProbeConcurrency(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.probeConcurrency = n
		}
	}
}

// WithProbeTimeout bounds each single-repository probe.
func WithProbeTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		if d > 0 {
			x.probeTimeout = d
		}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:          clients,
		probeConcurrency: defaultProbeConcurrency,
		probeTimeout:     defaultProbeTimeout,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
