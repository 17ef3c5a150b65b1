package entities

// Doctor is a bookable practitioner as listed by GET /doctors
type Doctor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	Qualifications  string  `json:"qualifications"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee int     `json:"consultation_fee"`
	Location        string  `json:"location"`
	DistanceKm      float64 `json:"distance_km"`
	Rating          float64 `json:"rating"`
	Available       bool    `json:"available"`
	Phone           string  `json:"phone"`
	Photo           string  `json:"photo"`
}

// BookingDraft holds the booking form exactly as the user typed it
type BookingDraft struct {
	PatientName   string `json:"patient_name"`
	PatientAge    string `json:"patient_age"`
	Symptoms      string `json:"symptoms"`
	ContactNumber string `json:"contact_number"`
	PreferredTime string `json:"preferred_time"`
}

// BookingRequest is the POST /doctors/book payload
type BookingRequest struct {
	DoctorID      string `json:"doctor_id"`
	PatientName   string `json:"patient_name"`
	PatientAge    int    `json:"patient_age"`
	Symptoms      string `json:"symptoms"`
	ContactNumber string `json:"contact_number"`
	PreferredTime string `json:"preferred_time"`
}
