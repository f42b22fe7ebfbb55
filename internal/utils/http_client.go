// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/go-resty/resty/v2"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that identifies itself with userAgent
// and never retries on its own: retrying a failed snapshot download is the
// caller's decision.
//
// Example usage:
//
//	client := utils.NewHTTPClient("shiosayi/1.0.0")
//	resp, err := client.R().Get("https://sys.shiosayi.org/db/public.sha256")
func NewHTTPClient(userAgent string) *HTTPClient {
	cli := resty.New().
		SetRetryCount(0).
		SetTimeout(0)

	if userAgent != "" {
		cli.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: cli}
}
