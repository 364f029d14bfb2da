package server

import (
	"encoding/json"
	"net/http"

	"housingready/pkg/types"
)

// maxClientBodyBytes bounds a client JSON payload; notes are the only
// free-form field of any size.
const maxClientBodyBytes = 1 << 20

func (s *Service) handleGetClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clients.Clients(r.Context())
	if err != nil {
		s.handleError(w, r, err, "Failed to fetch clients")
		return
	}

	s.renderJSON(w, http.StatusOK, clients)
}

func (s *Service) handleGetClient(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("id")

	client, err := s.clients.Client(r.Context(), clientID)
	if err != nil {
		s.handleError(w, r, err, "Failed to fetch client")
		return
	}

	s.renderJSON(w, http.StatusOK, client)
}

func (s *Service) handlePostClient(w http.ResponseWriter, r *http.Request) {
	input, err := decodeClient(w, r)
	if err != nil {
		s.handleError(w, r, err, "Failed to create client")
		return
	}

	client, err := s.clients.Create(r.Context(), input)
	if err != nil {
		s.handleError(w, r, err, "Failed to create client")
		return
	}

	s.logger.WithField("client_id", client.ID).Info("client created")

	s.renderJSON(w, http.StatusOK, client)
}

func (s *Service) handlePutClient(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("id")

	input, err := decodeClient(w, r)
	if err != nil {
		s.handleError(w, r, err, "Failed to update client")
		return
	}

	client, err := s.clients.Update(r.Context(), clientID, input)
	if err != nil {
		s.handleError(w, r, err, "Failed to update client")
		return
	}

	s.renderJSON(w, http.StatusOK, client)
}

func (s *Service) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("id")

	err := s.clients.Delete(r.Context(), clientID)
	if err != nil {
		s.handleError(w, r, err, "Failed to delete client")
		return
	}

	s.logger.WithField("client_id", clientID).Info("client deleted")

	s.renderJSON(w, http.StatusOK, successResponse{Success: true})
}

func decodeClient(w http.ResponseWriter, r *http.Request) (*types.Client, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxClientBodyBytes)

	var client = new(types.Client)
	if err := json.NewDecoder(r.Body).Decode(client); err != nil {
		return nil, types.ValidationError("invalid client payload")
	}

	return client, nil
}
