package server

import (
	"bytes"
	"net/http"
	"strconv"

	"housingready/internal/export"
	"housingready/pkg/types"
)

type exportQuery struct {
	Format string `form:"format"`
}

func (s *Service) handleGetClientsExport(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	var query = new(exportQuery)
	var filter export.Filter
	if err := decoder.Decode(query, values); err != nil {
		s.handleError(w, r, types.ValidationError("invalid export query"), "Failed to export clients")
		return
	}
	if err := decoder.Decode(&filter, values); err != nil {
		s.handleError(w, r, types.ValidationError("invalid export query"), "Failed to export clients")
		return
	}

	format, err := export.ParseFormat(query.Format)
	if err != nil {
		s.handleError(w, r, err, "Failed to export clients")
		return
	}

	if err := filter.Validate(); err != nil {
		s.handleError(w, r, err, "Failed to export clients")
		return
	}

	clients, err := s.clients.Clients(r.Context())
	if err != nil {
		s.handleError(w, r, err, "Failed to export clients")
		return
	}

	var buf bytes.Buffer
	err = export.Write(&buf, format, filter.Apply(clients))
	if err != nil {
		s.handleError(w, r, err, "Failed to export clients")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", attachment(export.FileName(s.now().UTC(), format)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		s.logger.WithError(err).Error("failed to write export")
	}
}
