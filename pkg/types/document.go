package types

import "time"

const DefaultUploader = "System"

// DocumentInfo is the metadata of an uploaded file. FileType and FileSize
// are whatever the uploader reported; they are never recomputed from the
// stored bytes.
type DocumentInfo struct {
	ID         string    `db:"id" json:"id"`
	ClientID   string    `db:"client_id" json:"clientId"`
	FileName   string    `db:"file_name" json:"fileName"`
	FileType   string    `db:"file_type" json:"fileType"`
	FileSize   int64     `db:"file_size" json:"fileSize"`
	UploadedBy string    `db:"uploaded_by" json:"uploadedBy"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploadedAt"`
}

// Document is an uploaded file including its content.
type Document struct {
	DocumentInfo
	FileData []byte `db:"file_data" json:"-"`
}
