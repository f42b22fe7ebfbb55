package service

import (
	"context"
	"os"

	"github.com/MKhiriev/shiosayi/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SnapshotService exposes the publisher's authoritative snapshot and its
// digest.
type SnapshotService interface {
	// Info returns the snapshot metadata, recomputing the digest only when
	// the file's size or modification time changed since the last call.
	Info(ctx context.Context) (models.SnapshotInfo, error)

	// Open returns the snapshot for reading together with its metadata.
	// The caller closes the file.
	Open(ctx context.Context) (*os.File, models.SnapshotInfo, error)
}
