package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
)

func TestNewServer_NoHTTPAddress(t *testing.T) {
	_, err := NewServer(http.NewServeMux(), nil, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_Success(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}
