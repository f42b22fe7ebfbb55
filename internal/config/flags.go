// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags shared by the client and the
// publisher.
//
// Flags:
//
//	-a, --address           publisher listen address in format [host]:[port]
//	    --snapshot          publisher snapshot file path
//	    --content-url       snapshot content URL
//	    --hash-url          snapshot manifest URL
//	    --auth-url          identity endpoint URL
//	    --request-timeout   manifest/identity request timeout (e.g. "15s")
//	    --download-timeout  snapshot download timeout (e.g. "5m")
//	    --digest            manifest digest algorithm
//	-d, --data-dir          client data directory
//	    --page-size         default catalog page size
//	-c, --config            json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var address NetAddress
	var snapshotPath string
	var contentURL, hashURL, authURL string
	var requestTimeout, downloadTimeout time.Duration
	var digest string
	var dataDir string
	var pageSize int
	var jsonConfigPath string

	fs := pflag.NewFlagSet("shiosayi", pflag.ContinueOnError)
	fs.VarP(&address, "address", "a", "Publisher net address host:port")
	fs.StringVar(&snapshotPath, "snapshot", "", "Publisher snapshot file path")
	fs.StringVar(&contentURL, "content-url", "", "Snapshot content URL")
	fs.StringVar(&hashURL, "hash-url", "", "Snapshot manifest URL")
	fs.StringVar(&authURL, "auth-url", "", "Identity endpoint URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Manifest and identity request timeout (e.g., 15s)")
	fs.DurationVar(&downloadTimeout, "download-timeout", 0, "Snapshot download timeout (e.g., 5m)")
	fs.StringVar(&digest, "digest", "", "Manifest digest algorithm (sha256, blake2b-256)")
	fs.StringVarP(&dataDir, "data-dir", "d", "", "Client data directory")
	fs.IntVar(&pageSize, "page-size", 0, "Default catalog page size")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Remote: Remote{
			ContentURL:      contentURL,
			HashURL:         hashURL,
			AuthURL:         authURL,
			RequestTimeout:  requestTimeout,
			DownloadTimeout: downloadTimeout,
			DigestAlgorithm: digest,
		},
		Storage: Storage{
			DataDir: dataDir,
		},
		Catalog: Catalog{
			PageSize: pageSize,
		},
		Publisher: Publisher{
			HTTPAddress:  address.String(),
			SnapshotPath: snapshotPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
