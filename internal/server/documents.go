package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"housingready/pkg/types"
)

// multipartOverhead is the slack allowed on top of the file ceiling for
// boundaries, part headers and the text fields.
const multipartOverhead = 1 << 20

const fallbackContentType = "application/octet-stream"

type documentListQuery struct {
	ClientID string `form:"clientId"`
}

type documentUploadForm struct {
	ClientID   string `form:"clientId"`
	UploadedBy string `form:"uploadedBy"`
}

type documentUploadResponse struct {
	Success    bool   `json:"success"`
	DocumentID string `json:"documentId"`
	FileName   string `json:"fileName"`
}

func (s *Service) handleGetDocuments(w http.ResponseWriter, r *http.Request) {
	var query = new(documentListQuery)
	err := decoder.Decode(query, r.URL.Query())
	if err != nil {
		s.logger.WithError(err).Error("failed to decode document list query")
		s.renderError(w, http.StatusBadRequest, "Invalid query")
		return
	}

	if strings.TrimSpace(query.ClientID) == "" {
		s.renderError(w, http.StatusBadRequest, "Client ID required")
		return
	}

	docs, err := s.documents.DocumentsByClientID(r.Context(), query.ClientID)
	if err != nil {
		s.handleError(w, r, err, "Failed to fetch documents")
		return
	}

	s.renderJSON(w, http.StatusOK, docs)
}

func (s *Service) handlePostDocument(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.config.MaxUploadBytes

	if r.ContentLength > maxBytes+multipartOverhead {
		s.renderError(w, http.StatusRequestEntityTooLarge, tooLargeMessage(maxBytes))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	err := r.ParseMultipartForm(maxBytes)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.renderError(w, http.StatusRequestEntityTooLarge, tooLargeMessage(maxBytes))
			return
		}
		s.logger.WithError(err).Error("failed to parse multipart form")
		s.renderError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	var upload = new(documentUploadForm)
	err = decoder.Decode(upload, r.PostForm)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode upload form")
		s.renderError(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			s.renderError(w, http.StatusBadRequest, "file is required")
			return
		}
		s.logger.WithError(err).Error("failed to open uploaded file")
		s.renderError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	defer file.Close()

	if header.Size > maxBytes {
		s.renderError(w, http.StatusRequestEntityTooLarge, tooLargeMessage(maxBytes))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.handleError(w, r, err, "Failed to upload document")
		return
	}

	doc := &types.Document{
		DocumentInfo: types.DocumentInfo{
			ClientID:   strings.TrimSpace(upload.ClientID),
			FileName:   header.Filename,
			FileType:   header.Header.Get("Content-Type"),
			FileSize:   header.Size,
			UploadedBy: strings.TrimSpace(upload.UploadedBy),
		},
		FileData: data,
	}

	err = s.documents.Create(r.Context(), doc)
	if err != nil {
		s.handleError(w, r, err, "Failed to upload document")
		return
	}

	s.logger.WithField("document_id", doc.ID).WithField("client_id", doc.ClientID).Info("document uploaded")

	s.renderJSON(w, http.StatusOK, documentUploadResponse{
		Success:    true,
		DocumentID: doc.ID,
		FileName:   doc.FileName,
	})
}

func (s *Service) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	documentID := r.PathValue("id")

	doc, err := s.documents.Document(r.Context(), documentID)
	if err != nil {
		s.handleError(w, r, err, "Failed to fetch document")
		return
	}

	contentType := doc.FileType
	if contentType == "" {
		contentType = fallbackContentType
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", attachment(doc.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.FileData)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(doc.FileData); err != nil {
		s.logger.WithError(err).WithField("document_id", documentID).Error("failed to write document")
	}
}

func (s *Service) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := r.PathValue("id")

	err := s.documents.Delete(r.Context(), documentID)
	if err != nil {
		s.handleError(w, r, err, "Failed to delete document")
		return
	}

	s.renderJSON(w, http.StatusOK, successResponse{Success: true})
}

func attachment(fileName string) string {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": fileName})
	if disposition == "" {
		return "attachment"
	}
	return disposition
}

func tooLargeMessage(maxBytes int64) string {
	return fmt.Sprintf("File size must be at most %d bytes", maxBytes)
}
