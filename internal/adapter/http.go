// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/shiosayi/internal/config"
	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/utils"
	"github.com/MKhiriev/shiosayi/models"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	contentURL string
	hashURL    string
	authURL    string

	requestTimeout  time.Duration
	downloadTimeout time.Duration
	digestSize      int

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP implementation of [RemoteAdapter]
// for the endpoints in remoteCfg. Requests identify themselves with the
// client version from appCfg.
func NewHTTPRemoteAdapter(remoteCfg config.ClientRemote, appCfg config.ClientApp, logger *logger.Logger) (RemoteAdapter, error) {
	digester, err := utils.NewDigester(remoteCfg.DigestAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid digest algorithm: %w", err)
	}

	return &httpRemoteAdapter{
		client:          utils.NewHTTPClient(userAgent(appCfg.Version)),
		contentURL:      strings.TrimSpace(remoteCfg.ContentURL),
		hashURL:         strings.TrimSpace(remoteCfg.HashURL),
		authURL:         strings.TrimSpace(remoteCfg.AuthURL),
		requestTimeout:  remoteCfg.RequestTimeout,
		downloadTimeout: remoteCfg.DownloadTimeout,
		digestSize:      digester.Size(),
		logger:          logger,
	}, nil
}

func userAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return "shiosayi/" + version
}

// withTimeout bounds ctx by d; a non-positive d leaves ctx unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// FetchManifestHash implements [RemoteAdapter]. The manifest body may carry
// more than the digest (e.g. "<hex>  public.db"); only the first
// whitespace-separated token is used.
func (h *httpRemoteAdapter) FetchManifestHash(ctx context.Context) (string, error) {
	ctx, cancel := withTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.hashURL)
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteAdapter.FetchManifestHash").Str("url", h.hashURL).Msg("manifest request failed")
		return "", fmt.Errorf("%w: manifest request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpRemoteAdapter.FetchManifestHash").Int("status", resp.StatusCode()).Msg("manifest request rejected")
		return "", err
	}

	hash, err := parseManifest(resp.Body(), h.digestSize)
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteAdapter.FetchManifestHash").Msg("bad manifest body")
		return "", err
	}

	return hash, nil
}

func parseManifest(body []byte, digestSize int) (string, error) {
	fields := strings.Fields(string(body))
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty body", ErrMalformedManifest)
	}

	token := strings.ToLower(fields[0])
	if !utils.IsHexDigest(token, digestSize) {
		return "", fmt.Errorf("%w: %q is not a %d-byte hex digest", ErrMalformedManifest, fields[0], digestSize)
	}

	return token, nil
}

// DownloadSnapshot implements [RemoteAdapter]. The whole body is read into
// memory; a partial body is reported as an error, never returned.
func (h *httpRemoteAdapter) DownloadSnapshot(ctx context.Context) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, h.downloadTimeout)
	defer cancel()

	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.contentURL)
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteAdapter.DownloadSnapshot").Str("url", h.contentURL).Msg("snapshot download failed")
		return nil, fmt.Errorf("%w: snapshot request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpRemoteAdapter.DownloadSnapshot").Int("status", resp.StatusCode()).Msg("snapshot download rejected")
		return nil, err
	}

	body := resp.Body()
	h.logger.Debug().
		Str("func", "httpRemoteAdapter.DownloadSnapshot").
		Int("bytes", len(body)).
		Dur("took", time.Since(started)).
		Msg("snapshot downloaded")

	return body, nil
}

// Authenticate implements [RemoteAdapter] with GET <authURL>?token=<apiKey>.
func (h *httpRemoteAdapter) Authenticate(ctx context.Context, apiKey string) (models.Guardian, error) {
	ctx, cancel := withTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("token", apiKey).
		SetHeader("Accept", "application/json").
		Get(h.authURL)
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteAdapter.Authenticate").Msg("identity request failed")
		return models.Guardian{}, fmt.Errorf("%w: identity request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Guardian{}, err
	}

	var guardian models.Guardian
	if err = json.Unmarshal(resp.Body(), &guardian); err != nil {
		return models.Guardian{}, fmt.Errorf("%w: decode identity response: %w", ErrNetwork, err)
	}

	return guardian, nil
}
