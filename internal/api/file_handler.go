package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/service/file"
)

// imageContentTypes is the allow-list for uploaded file parts. Parts with
// any other content type are skipped as if they were never sent.
var imageContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// FileHandler serves the profile image upload endpoint.
type FileHandler struct {
	fileSvc     *file.Service
	maxFileSize int64
}

// NewFileHandler creates a new FileHandler. maxFileSize bounds the whole
// multipart body in bytes.
func NewFileHandler(fileSvc *file.Service, maxFileSize int64) *FileHandler {
	return &FileHandler{fileSvc: fileSvc, maxFileSize: maxFileSize}
}

// Upload accepts a multipart form with an image part named "file" and two
// integer text fields "tag" and "type", stores the image under the
// authenticated user, and returns the stored object's URL.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	data, filename := h.imagePart(r)
	tag := formInt(r, "tag")
	fileType := formInt(r, "type")

	if len(data) == 0 || filename == "" || tag == -1 || fileType == -1 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request")
		return
	}

	url, err := h.fileSvc.Upload(r.Context(), data, filename, cred.UserID, tag, fileType)
	if err != nil {
		RespondWithDomainError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto.FileResponse{URL: url})
}

// imagePart extracts the "file" part when its declared content type is an
// accepted image type. Anything else leaves both return values empty.
func (h *FileHandler) imagePart(r *http.Request) ([]byte, string) {
	f, header, err := r.FormFile("file")
	if err != nil {
		return nil, ""
	}
	defer f.Close()

	if !imageContentTypes[header.Header.Get("Content-Type")] {
		return nil, ""
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, ""
	}
	return data, header.Filename
}

// formInt parses a text field as int32, returning -1 when the field is
// missing or not a number.
func formInt(r *http.Request, field string) int32 {
	v, err := strconv.ParseInt(r.FormValue(field), 10, 32)
	if err != nil {
		return -1
	}
	return int32(v)
}
