package entity

// GeneratedFile points at an image written into the static-serving directory.
type GeneratedFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
