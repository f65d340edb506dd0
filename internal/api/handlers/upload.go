package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/anastasya/flower-shop/internal/api/response"
	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/storage"
)

// maxUploadSize caps image uploads at 5MB.
const maxUploadSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type UploadHandler struct {
	storage storage.Service
	log     *logrus.Logger
}

func NewUploadHandler(storage storage.Service, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{storage: storage, log: log}
}

type UploadData struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// Upload accepts a multipart image and forwards it to the media host.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+4096)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.HandleError(w, h.log, domain.ErrFileTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.HandleError(w, h.log, domain.ErrFileMissing)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		response.HandleError(w, h.log, domain.ErrFileType)
		return
	}
	if header.Size > maxUploadSize {
		response.HandleError(w, h.log, domain.ErrFileTooLarge)
		return
	}

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}
	// Folder becomes part of the object key; anything outside slug shape
	// could escape the configured prefix.
	if !domain.SlugPattern.MatchString(folder) {
		response.HandleError(w, h.log, domain.ErrFolderName)
		return
	}

	result, err := h.storage.UploadImage(r.Context(), storage.UploadInput{
		Folder:      folder,
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	response.Success(w, UploadData{
		URL:  result.URL,
		Key:  result.Key,
		Size: result.Size,
	}, "Image uploaded successfully")
}
