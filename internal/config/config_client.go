package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is the client build version.
	Version string
}

// ClientRemote describes the remote manifest, content and identity
// endpoints used by the client.
type ClientRemote struct {
	// ContentURL serves the full snapshot body.
	ContentURL string
	// HashURL serves the snapshot manifest.
	HashURL string
	// AuthURL is the identity endpoint.
	AuthURL string
	// RequestTimeout bounds manifest and identity requests.
	RequestTimeout time.Duration
	// DownloadTimeout bounds a full snapshot download.
	DownloadTimeout time.Duration
	// DigestAlgorithm names the manifest digest.
	DigestAlgorithm string
}

// ClientStorage holds resolved local paths.
type ClientStorage struct {
	// DataDir is the application data directory.
	DataDir string
	// ReplicaPath is the absolute or relative path of the replica file.
	ReplicaPath string
	// SettingsPath is the path of the side-car settings record.
	SettingsPath string
}

// ClientCatalog holds query-layer limits.
type ClientCatalog struct {
	// PageSize is the default page size.
	PageSize int
	// MaxPageSize caps any requested page size.
	MaxPageSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Remote  ClientRemote
	Storage ClientStorage
	Catalog ClientCatalog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Remote: ClientRemote{
			ContentURL:      cfg.Remote.ContentURL,
			HashURL:         cfg.Remote.HashURL,
			AuthURL:         cfg.Remote.AuthURL,
			RequestTimeout:  cfg.Remote.RequestTimeout,
			DownloadTimeout: cfg.Remote.DownloadTimeout,
			DigestAlgorithm: cfg.Remote.DigestAlgorithm,
		},
		Storage: ClientStorage{
			DataDir:      cfg.Storage.DataDir,
			ReplicaPath:  joinDataPath(cfg.Storage.DataDir, cfg.Storage.ReplicaFile),
			SettingsPath: joinDataPath(cfg.Storage.DataDir, cfg.Storage.SettingsFile),
		},
		Catalog: ClientCatalog{
			PageSize:    cfg.Catalog.PageSize,
			MaxPageSize: cfg.Catalog.MaxPageSize,
		},
	}
}

func joinDataPath(dir, name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(dir, name)
}

// PublisherServer holds the publisher's HTTP settings.
type PublisherServer struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// PublisherConfig is the snapshot publisher configuration assembled from
// [StructuredConfig].
type PublisherConfig struct {
	App             ClientApp
	Server          PublisherServer
	SnapshotPath    string
	DigestAlgorithm string
}

// GetPublisherConfig builds and validates the publisher config view.
func GetPublisherConfig(args []string) (*PublisherConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	publisherCfg := &PublisherConfig{
		App: ClientApp{Version: cfg.App.Version},
		Server: PublisherServer{
			HTTPAddress:    cfg.Publisher.HTTPAddress,
			RequestTimeout: cfg.Publisher.RequestTimeout,
		},
		SnapshotPath:    cfg.Publisher.SnapshotPath,
		DigestAlgorithm: cfg.Remote.DigestAlgorithm,
	}

	return publisherCfg, publisherCfg.validate()
}
