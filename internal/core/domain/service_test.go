package domain

import (
	"encoding/json"
	"testing"
)

func TestVehicleRefUnmarshalString(t *testing.T) {
	var ref VehicleRef
	if err := json.Unmarshal([]byte(`"v1"`), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ref.ID != "v1" || ref.Vehicle != nil {
		t.Fatalf("unexpected decode: %+v", ref)
	}
	if ref.Label() != UnknownVehicleLabel {
		t.Fatalf("unresolved ref should label as unknown, got %q", ref.Label())
	}
}

func TestVehicleRefUnmarshalEmbedded(t *testing.T) {
	var ref VehicleRef
	raw := `{"_id":"v1","marque":"Renault","modele":"Clio","annee":2020}`
	if err := json.Unmarshal([]byte(raw), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ref.ID != "v1" {
		t.Fatalf("expected id from embedded document, got %q", ref.ID)
	}
	if ref.Vehicle == nil || ref.Vehicle.Marque != "Renault" {
		t.Fatalf("expected resolved vehicle, got %+v", ref.Vehicle)
	}
	if ref.Label() != "Renault Clio" {
		t.Fatalf("unexpected label %q", ref.Label())
	}
}

func TestVehicleRefUnmarshalNull(t *testing.T) {
	ref := VehicleRef{ID: "stale"}
	if err := json.Unmarshal([]byte(`null`), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ref.ID != "" || ref.Vehicle != nil {
		t.Fatalf("null should zero the ref, got %+v", ref)
	}
}

func TestVehicleRefMarshalEmitsBareID(t *testing.T) {
	ref := VehicleRef{ID: "v1", Vehicle: &Vehicle{ID: "v1", Marque: "Renault"}}
	out, err := json.Marshal(ref)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"v1"` {
		t.Fatalf("expected bare id, got %s", out)
	}
}

func TestServiceUnmarshalLegacyID(t *testing.T) {
	var s Service
	raw := `{"_id":"s1","vehicle":"v1","type":"Vidange","date":"2026-01-15","kilometrage":42000,"notes":"synthétique"}`
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.ID != "s1" {
		t.Fatalf("expected legacy id, got %q", s.ID)
	}
	if s.Type != ServiceVidange {
		t.Fatalf("unexpected type %q", s.Type)
	}
	if s.Vehicle.ID != "v1" {
		t.Fatalf("unexpected vehicle ref %+v", s.Vehicle)
	}
	if s.Kilometrage != 42000 || s.Notes != "synthétique" {
		t.Fatalf("unexpected decode: %+v", s)
	}
}
