package domain

// Notification priorities and kinds, as computed by the backend.
const (
	NotificationUpcoming = "upcoming_service"
	NotificationOverdue  = "overdue_service"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// NotificationVehicle is the trimmed vehicle view embedded in notifications.
type NotificationVehicle struct {
	ID              string `json:"id"`
	Marque          string `json:"marque"`
	Modele          string `json:"modele"`
	Immatriculation string `json:"immatriculation"`
}

// Notification is a maintenance reminder derived by the backend from the
// vehicle's service history.
type Notification struct {
	Type                   string              `json:"type"`
	Priority               string              `json:"priority"`
	Vehicle                NotificationVehicle `json:"vehicle"`
	ServiceType            ServiceType         `json:"serviceType"`
	DaysUntilService       int                 `json:"daysUntilService,omitempty"`
	DaysOverdue            int                 `json:"daysOverdue,omitempty"`
	LastServiceDate        string              `json:"lastServiceDate"`
	LastServiceKilometrage int                 `json:"lastServiceKilometrage"`
	Message                string              `json:"message"`
}

// NotificationSummary counts notifications per priority bucket.
type NotificationSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// NotificationFeed is the full payload of GET /api/notifications.
type NotificationFeed struct {
	Notifications []Notification      `json:"notifications"`
	Count         int                 `json:"count"`
	Summary       NotificationSummary `json:"summary"`
}
