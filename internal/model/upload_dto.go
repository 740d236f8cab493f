package model

import "mime/multipart"

type UploadFileRequest struct {
	File *multipart.FileHeader `form:"file" validate:"required"`
}

type TempUploadRequest struct {
	File *multipart.FileHeader `form:"file" validate:"required"`
	Time string                `form:"time" validate:"omitempty,expiration"`
}

type URLUploadRequest struct {
	URL       string `json:"url" validate:"required,url"`
	Temporary bool   `json:"temporary"`
	Time      string `json:"time" validate:"omitempty,expiration"`
}

type UploadResponse struct {
	Success     bool    `json:"success"`
	URL         string  `json:"url"`
	Filename    string  `json:"filename"`
	SizeMB      float64 `json:"size_mb"`
	Expiration  string  `json:"expiration,omitempty"`
	Temporary   bool    `json:"temporary,omitempty"`
	OriginalURL string  `json:"original_url,omitempty"`
}
