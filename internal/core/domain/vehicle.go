package domain

import "encoding/json"

// Vehicle is a tracked vehicle owned by a portal user.
type Vehicle struct {
	ID              string    `json:"id"`
	Owner           string    `json:"owner"`
	Marque          string    `json:"marque"`
	Modele          string    `json:"modele"`
	Annee           int       `json:"annee"`
	Immatriculation string    `json:"immatriculation"`
	Services        []Service `json:"services,omitempty"`
	CreatedAt       string    `json:"createdAt,omitempty"`
	UpdatedAt       string    `json:"updatedAt,omitempty"`
}

func (v *Vehicle) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID              string    `json:"id"`
		LegacyID        string    `json:"_id"`
		Owner           string    `json:"owner"`
		Marque          string    `json:"marque"`
		Modele          string    `json:"modele"`
		Annee           int       `json:"annee"`
		Immatriculation string    `json:"immatriculation"`
		Services        []Service `json:"services"`
		CreatedAt       string    `json:"createdAt"`
		UpdatedAt       string    `json:"updatedAt"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	v.ID = raw.ID
	if v.ID == "" {
		v.ID = raw.LegacyID
	}
	v.Owner = raw.Owner
	v.Marque = raw.Marque
	v.Modele = raw.Modele
	v.Annee = raw.Annee
	v.Immatriculation = raw.Immatriculation
	v.Services = raw.Services
	v.CreatedAt = raw.CreatedAt
	v.UpdatedAt = raw.UpdatedAt
	return nil
}

// Label is the human-readable vehicle designation used across the dashboards.
func (v *Vehicle) Label() string {
	return v.Marque + " " + v.Modele
}
