// File: handlers/bundle.go
package handlers

// HandlerBundle groups all HTTP handlers for route registration.
type HandlerBundle struct {
	DoctorHandler       *DoctorHandler
	ScheduleHandler     *ScheduleHandler
	AppointmentHandler  *AppointmentHandler
	AdminHandler        *AdminHandler
	NotificationHandler *NotificationHandler
	ActivityHandler     *ActivityHandler
	RecordHandler       *RecordHandler
	StorageHandler      *StorageHandler
}
