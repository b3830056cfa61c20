package service

import (
	"github.com/MKhiriev/cftunnel/internal/adapter"
	"github.com/MKhiriev/cftunnel/internal/config"
	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/process"
	"github.com/MKhiriev/cftunnel/internal/store"
)

type ClientServices struct {
	TunnelService    TunnelService
	SetupService     SetupService
	ConnectorService ConnectorService
}

func NewClientServices(storages *store.ClientStorages, cfAdapter adapter.CloudflareAdapter, supervisor process.ConnectorSupervisor, settings config.Connector, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		TunnelService:    NewTunnelService(storages, cfAdapter, logger),
		SetupService:     NewSetupService(storages, cfAdapter, logger),
		ConnectorService: NewConnectorService(storages, supervisor, settings, logger),
	}
}
