package common

import (
	"github.com/careerforge/careerforge-api/internal/config"
	pkgHTTP "github.com/careerforge/careerforge-api/pkg/http"
)

func NewTextFetcher(cfg config.JobPostConfig) *pkgHTTP.Fetcher {
	fetcherCfg := pkgHTTP.FetcherConfig{
		MaxBodyBytes: cfg.MaxBodyBytes,
	}

	return pkgHTTP.NewFetcher(
		fetcherCfg,
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnTimeout(cfg.ConnTimeout),
		pkgHTTP.WithKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
	)
}
