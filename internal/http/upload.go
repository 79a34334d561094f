package httpapi

import (
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nexus-backend-go/internal/services"
)

type UploadAction string

const (
	UploadSingle   UploadAction = "upload-single"
	UploadMultiple UploadAction = "upload-multiple"
	UploadBase64   UploadAction = "upload-base64"
)

var resourceTypes = map[string]bool{
	"image": true,
	"video": true,
	"raw":   true,
	"auto":  true,
}

type UploadResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

const multipartMemory = 32 << 20

func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.Config.MaxUploadBytes())
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = s.Config.MediaFolder
	}
	resourceType := r.FormValue("resource_type")
	if resourceType == "" {
		resourceType = "auto"
	}
	if !resourceTypes[resourceType] {
		WriteError(w, http.StatusBadRequest, "Invalid resource type")
		return
	}

	var (
		data any
		err  error
	)
	switch UploadAction(r.FormValue("action")) {
	case UploadSingle:
		files := r.MultipartForm.File["file"]
		if len(files) == 0 {
			WriteError(w, http.StatusBadRequest, "No file provided")
			return
		}
		data, err = s.uploadFile(r, files[0], services.UploadOptions{
			Folder:       folder,
			PublicID:     services.SinglePublicID(folder, time.Now(), files[0].Filename),
			ResourceType: resourceType,
		})
	case UploadMultiple:
		files := r.MultipartForm.File["files"]
		if len(files) == 0 {
			WriteError(w, http.StatusBadRequest, "No files provided")
			return
		}
		data, err = s.uploadFiles(r, files, folder, resourceType)
	case UploadBase64:
		encoded := r.FormValue("base64")
		if encoded == "" {
			WriteError(w, http.StatusBadRequest, "No base64 data provided")
			return
		}
		data, err = s.Media.UploadData(r.Context(), encoded, services.UploadOptions{
			Folder:       folder,
			ResourceType: resourceType,
		})
	default:
		WriteError(w, http.StatusBadRequest, "Invalid action")
		return
	}
	if err != nil {
		s.Logger.Error("upload failed", zap.String("folder", folder), zap.Error(err))
		WriteErrorDetails(w, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, UploadResponse{Success: true, Data: data})
}

func (s *Server) uploadFile(r *http.Request, header *multipart.FileHeader, opts services.UploadOptions) (services.MediaAsset, error) {
	file, err := header.Open()
	if err != nil {
		return services.MediaAsset{}, err
	}
	defer file.Close()
	return s.Media.Upload(r.Context(), file, opts)
}

// uploadFiles uploads concurrently and fails as a whole if any file fails.
func (s *Server) uploadFiles(r *http.Request, headers []*multipart.FileHeader, folder, resourceType string) ([]services.MediaAsset, error) {
	at := time.Now()
	assets := make([]services.MediaAsset, len(headers))
	g, ctx := errgroup.WithContext(r.Context())
	for i, header := range headers {
		i, header := i, header
		g.Go(func() error {
			file, err := header.Open()
			if err != nil {
				return err
			}
			defer file.Close()
			asset, err := s.Media.Upload(ctx, file, services.UploadOptions{
				Folder:       folder,
				PublicID:     services.BatchPublicID(folder, at, i),
				ResourceType: resourceType,
			})
			if err != nil {
				return err
			}
			assets[i] = asset
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *Server) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	publicID := r.URL.Query().Get("public_id")
	if publicID == "" {
		WriteError(w, http.StatusBadRequest, "Public ID is required")
		return
	}
	result, err := s.Media.Destroy(r.Context(), publicID, r.URL.Query().Get("resource_type"))
	if err != nil {
		s.Logger.Error("media delete failed", zap.String("public_id", publicID), zap.Error(err))
		WriteErrorDetails(w, http.StatusInternalServerError, "Delete failed", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, UploadResponse{Success: true, Data: result})
}
