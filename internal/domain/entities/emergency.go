package entities

// ContactType classifies an emergency contact
type ContactType string

const (
	ContactTypeHospital  ContactType = "hospital"
	ContactTypeAmbulance ContactType = "ambulance"
	ContactTypePolice    ContactType = "police"
	ContactTypeDoctor    ContactType = "doctor"
)

// EmergencyContact is listed by GET /emergency/contacts
type EmergencyContact struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       ContactType `json:"type"`
	Phone      string      `json:"phone"`
	Address    string      `json:"address"`
	DistanceKm float64     `json:"distance_km"`
}

// Coordinates is a lat/lng pair as sent to POST /emergency/sos
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SOSRequest is the POST /emergency/sos payload
type SOSRequest struct {
	Location Coordinates `json:"location"`
}

// SOSResponse is the POST /emergency/sos reply
type SOSResponse struct {
	Message string `json:"message"`
	SOSID   string `json:"sos_id"`
}

// MockSOSLocation is reported until a real geolocation source exists
var MockSOSLocation = Coordinates{Lat: 23.2599, Lng: 77.4126}
