package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/shiosayi/internal/config"
	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.ClientApp{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	tests := []string{"1.0.0", "v1.2.3-beta+build.42", "dev"}

	for _, version := range tests {
		t.Run(version, func(t *testing.T) {
			svc, err := NewAppInfoService(config.ClientApp{Version: version}, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			// ctx is not consulted
			assert.Equal(t, version, svc.GetAppVersion(ctx))
		})
	}
}
