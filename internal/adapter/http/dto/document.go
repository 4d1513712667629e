package dto

type DocumentItem struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	FilePath string `json:"file_path"`
	Date     string `json:"date"`
}

// DocumentForm is the multipart form for document upload; the file part is
// mandatory and read separately from the request.
type DocumentForm struct {
	Name string `form:"name"`
}
