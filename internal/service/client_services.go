package service

import (
	"github.com/MKhiriev/fit-sync/internal/adapter"
	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/store"
)

type ClientServices struct {
	Queue        *TaskQueue
	SyncEngine   SyncEngine
	Cloud        CloudService
	Dataset      DatasetService
	Connectivity ConnectivityMonitor
}

func NewClientServices(localStore store.LocalStorage, remote adapter.RemoteStore, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	clock := SystemClock()
	queue := NewTaskQueue(clock, logger)
	engine := NewSyncEngine(localStore, remote, queue, NewBackoffPolicy(cfg.Sync), clock, logger)

	return &ClientServices{
		Queue:        queue,
		SyncEngine:   engine,
		Cloud:        NewCloudService(localStore, remote, engine, cfg.App, clock, logger),
		Dataset:      NewDatasetService(engine, localStore, clock, logger),
		Connectivity: NewConnectivityMonitor(remote, engine, cfg.Sync.ProbeInterval, logger),
	}
}
