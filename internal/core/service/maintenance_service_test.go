package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
)

func TestMaintenanceServiceListNoFilter(t *testing.T) {
	gw := &stubGateway{envelopes: map[string]*domain.Envelope{
		"GET /api/services": okEnvelope(t,
			`{"services":[{"_id":"s1","vehicle":"v1","type":"Vidange","date":"2026-01-15","kilometrage":42000}],"count":1}`),
	}}

	services, err := NewMaintenanceService(gw).List(context.Background(), ports.ServiceFilter{})
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "s1", services[0].ID)
	require.Equal(t, domain.ServiceVidange, services[0].Type)
	require.Equal(t, "v1", services[0].Vehicle.ID)
}

func TestMaintenanceServiceListBuildsQuery(t *testing.T) {
	gw := &stubGateway{envelopes: map[string]*domain.Envelope{
		"GET /api/services?type=Vidange&vehicleId=v1": okEnvelope(t, `{"services":[],"count":0}`),
	}}

	_, err := NewMaintenanceService(gw).List(context.Background(), ports.ServiceFilter{
		Type:      "Vidange",
		VehicleID: "v1",
	})
	require.NoError(t, err)
	require.Equal(t, "/api/services?type=Vidange&vehicleId=v1", gw.lastPath)
}

func TestMaintenanceServiceListVehicleShapes(t *testing.T) {
	gw := &stubGateway{envelopes: map[string]*domain.Envelope{
		"GET /api/services": okEnvelope(t, `{"services":[
			{"_id":"s1","vehicle":"v9","type":"Freins","date":"2026-02-01"},
			{"_id":"s2","vehicle":{"_id":"v1","marque":"Renault","modele":"Clio","annee":2020},"type":"Pneus","date":"2026-03-01"},
			{"_id":"s3","vehicle":null,"type":"Autre","date":"2026-04-01"}
		],"count":3}`),
	}}

	services, err := NewMaintenanceService(gw).List(context.Background(), ports.ServiceFilter{})
	require.NoError(t, err)
	require.Len(t, services, 3)

	require.Equal(t, "v9", services[0].Vehicle.ID)
	require.Nil(t, services[0].Vehicle.Vehicle)

	require.Equal(t, "v1", services[1].Vehicle.ID)
	require.NotNil(t, services[1].Vehicle.Vehicle)
	require.Equal(t, "Renault Clio", services[1].Vehicle.Vehicle.Label())

	require.Empty(t, services[2].Vehicle.ID)
}

func TestMaintenanceServiceCreateFallbackMessage(t *testing.T) {
	gw := &stubGateway{envelopes: map[string]*domain.Envelope{
		"POST /api/services": failEnvelope(""),
	}}

	_, err := NewMaintenanceService(gw).Create(context.Background(), ports.ServiceInput{
		Vehicle: "v1",
		Type:    domain.ServiceVidange,
		Date:    "2026-01-15",
	})
	require.EqualError(t, err, "Failed to create service")
}

func TestMaintenanceServiceDelete(t *testing.T) {
	gw := &stubGateway{envelopes: map[string]*domain.Envelope{
		"DELETE /api/services/s1": okEnvelope(t, ""),
	}}
	require.NoError(t, NewMaintenanceService(gw).Delete(context.Background(), "s1"))
}

func TestNotificationServiceFeed(t *testing.T) {
	gw := &stubGateway{envelopes: map[string]*domain.Envelope{
		"GET /api/notifications": okEnvelope(t, `{
			"notifications":[{
				"type":"overdue_service",
				"priority":"high",
				"vehicle":{"id":"v1","marque":"Renault","modele":"Clio"},
				"message":"Vidange en retard"
			}],
			"count":1,
			"summary":{"high":1,"medium":0,"low":0}
		}`),
	}}

	feed, err := NewNotificationService(gw).Feed(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, feed.Count)
	require.Equal(t, 1, feed.Summary.High)
	require.Len(t, feed.Notifications, 1)
	require.Equal(t, domain.NotificationOverdue, feed.Notifications[0].Type)
	require.Equal(t, domain.PriorityHigh, feed.Notifications[0].Priority)
}
