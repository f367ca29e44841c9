package models

var serviceLabels = map[string]string{
	"consultation": "Room Cleaning",
	"appointment":  "Car/Motorcycle Rescue and Services",
	"other":        "Other Service",
}

// ServiceLabel returns the display name of a service, or the raw value when
// the service is unknown.
func ServiceLabel(service string) string {
	if label, ok := serviceLabels[service]; ok {
		return label
	}

	return service
}
