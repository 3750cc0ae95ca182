package service

import (
	"github.com/staykeeper/staykeeper/internal/adapter"
	"github.com/staykeeper/staykeeper/internal/config"
	"github.com/staykeeper/staykeeper/internal/store"
)

// ClientServices bundles every service the owner client TUI depends on.
type ClientServices struct {
	AuthService      ClientAuthService
	DashboardService ClientDashboardService
	EditorService    ClientGuideEditorService
}

// NewClientServices wires the owner client's service layer on top of the
// local store and the server adapter. adapterCfg supplies the public base URL
// used for shareable guest links.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, adapterCfg config.ClientAdapter) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(localStore, serverAdapter),
		DashboardService: NewClientDashboardService(localStore, serverAdapter, adapterCfg.EndpointURL),
		EditorService:    NewClientGuideEditorService(localStore, serverAdapter),
	}
}
