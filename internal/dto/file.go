package dto

// FileResponse carries the public URL of a stored upload.
type FileResponse struct {
	URL string `json:"url"`
}
