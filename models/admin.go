package models

// AdminStats is the dashboard summary shown on the admin home screen.
type AdminStats struct {
	TotalDoctors         int64 `json:"totalDoctors"`
	VerifiedDoctors      int64 `json:"verifiedDoctors"`
	PendingVerifications int64 `json:"pendingVerifications"`
	PendingUpdates       int64 `json:"pendingUpdates"`
	TotalAppointments    int64 `json:"totalAppointments"`
	PendingAppointments  int64 `json:"pendingAppointments"`
}
