package domain

// StatsOverview is the headline block of the admin statistics payload.
type StatsOverview struct {
	TotalUsers           int `json:"totalUsers"`
	TotalAdmins          int `json:"totalAdmins"`
	TotalRegularUsers    int `json:"totalRegularUsers"`
	TotalVehicles        int `json:"totalVehicles"`
	TotalServices        int `json:"totalServices"`
	NewUsersLastMonth    int `json:"newUsersLastMonth"`
	NewVehiclesLastMonth int `json:"newVehiclesLastMonth"`
	NewServicesLastMonth int `json:"newServicesLastMonth"`
}

// CountByKey is a backend aggregation bucket ({_id, count}).
type CountByKey struct {
	Key   string `json:"_id"`
	Count int    `json:"count"`
}

// TopUser is a user ranked by vehicle count.
type TopUser struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	VehicleCount int    `json:"vehicleCount"`
}

// TopVehicle is a vehicle ranked by service count.
type TopVehicle struct {
	ID           string `json:"_id"`
	Marque       string `json:"marque"`
	Modele       string `json:"modele"`
	ServiceCount int    `json:"serviceCount"`
}

// AdminStats is the payload of GET /api/admin/stats.
type AdminStats struct {
	Overview        StatsOverview `json:"overview"`
	ServicesByType  []CountByKey  `json:"servicesByType"`
	VehiclesByBrand []CountByKey  `json:"vehiclesByBrand"`
	ServicesByMonth []CountByKey  `json:"servicesByMonth"`
	TopUsers        []TopUser     `json:"topUsers"`
	TopVehicles     []TopVehicle  `json:"topVehicles"`
	RecentServices  []Service     `json:"recentServices"`
}
