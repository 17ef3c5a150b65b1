package entities

// Feature is a dashboard tile linking to a screen
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}
