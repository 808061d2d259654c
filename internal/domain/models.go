package domain

// File is the in-memory binary object handed to the upload router. Data is
// fully materialized before any network activity so adapters always send a
// length-known body.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadResult reports where an uploaded object ended up. Key is the
// storage-relative path; URL is the fully resolved public address.
type UploadResult struct {
	Provider Provider `json:"provider"`
	Key      string   `json:"key"`
	URL      string   `json:"url"`
}
