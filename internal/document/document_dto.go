package document

type CreateDocumentRequest struct {
	EntityType string `json:"entity_type" binding:"required"`
	EntityID   string `json:"entity_id" binding:"required"`
	FileName   string `json:"file_name" binding:"required"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size" binding:"gte=0"`
}

type DocumentResponse struct {
	ID         string `json:"id"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	FileName   string `json:"file_name"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
	UploadedBy string `json:"uploaded_by,omitempty"`
	CreatedAt  string `json:"created_at"`
}
