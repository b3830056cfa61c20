package store

import (
	"github.com/MKhiriev/cftunnel/internal/logger"
)

// ClientStorages groups every local store into a single value that can be
// passed around the service layer.
type ClientStorages struct {
	Paths  Paths
	Config AppConfigStore
	Tokens TokenStore
	PIDs   PIDStore
}

// NewClientStorages wires all file-backed stores rooted at dataDir. No file
// is touched until a store method is called.
func NewClientStorages(dataDir string, logger *logger.Logger) *ClientStorages {
	logger.Debug().Str("data_dir", dataDir).Msg("creating local storages")

	paths := NewPaths(dataDir)
	return &ClientStorages{
		Paths:  paths,
		Config: NewAppConfigStore(paths, logger),
		Tokens: NewTokenStore(paths, logger),
		PIDs:   NewPIDStore(paths, logger),
	}
}
