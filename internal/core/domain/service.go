package domain

import "encoding/json"

// ServiceType enumerates the maintenance operations the backend understands.
type ServiceType string

const (
	ServiceVidange  ServiceType = "Vidange"
	ServiceFreins   ServiceType = "Freins"
	ServicePneus    ServiceType = "Pneus"
	ServiceFiltres  ServiceType = "Filtres"
	ServiceBatterie ServiceType = "Batterie"
	ServiceRevision ServiceType = "Révision"
	ServiceAutre    ServiceType = "Autre"
)

// UnknownVehicleLabel is rendered when a service references a vehicle that no
// longer resolves. Dangling references are tolerated, never an error.
const UnknownVehicleLabel = "Véhicule inconnu"

// VehicleRef is a reference to a vehicle. The backend serialises it either as
// a bare id string or as an embedded vehicle document; decoding normalises
// both shapes to a canonical ID plus an optional resolved document.
type VehicleRef struct {
	ID      string
	Vehicle *Vehicle
}

func (r *VehicleRef) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*r = VehicleRef{}
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}

	var v Vehicle
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	r.ID = v.ID
	r.Vehicle = &v
	return nil
}

// MarshalJSON always emits the bare id, the shape the backend accepts on writes.
func (r VehicleRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Label returns the referenced vehicle's designation, or UnknownVehicleLabel
// when the reference is dangling.
func (r VehicleRef) Label() string {
	if r.Vehicle != nil {
		return r.Vehicle.Label()
	}
	return UnknownVehicleLabel
}

// Service is a single maintenance record attached to a vehicle.
type Service struct {
	ID          string      `json:"id"`
	Vehicle     VehicleRef  `json:"vehicle"`
	Type        ServiceType `json:"type"`
	Date        string      `json:"date"`
	Kilometrage int         `json:"kilometrage"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

func (s *Service) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID          string     `json:"id"`
		LegacyID    string     `json:"_id"`
		Vehicle     VehicleRef `json:"vehicle"`
		Type        string     `json:"type"`
		Date        string     `json:"date"`
		Kilometrage int        `json:"kilometrage"`
		Notes       string     `json:"notes"`
		CreatedAt   string     `json:"createdAt"`
		UpdatedAt   string     `json:"updatedAt"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	s.ID = raw.ID
	if s.ID == "" {
		s.ID = raw.LegacyID
	}
	s.Vehicle = raw.Vehicle
	s.Type = ServiceType(raw.Type)
	s.Date = raw.Date
	s.Kilometrage = raw.Kilometrage
	s.Notes = raw.Notes
	s.CreatedAt = raw.CreatedAt
	s.UpdatedAt = raw.UpdatedAt
	return nil
}
