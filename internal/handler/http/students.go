// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-campus-api/internal/utils"
	"github.com/MKhiriev/go-campus-api/models"
)

const deletedMessage = "Deleted"

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	var req models.StudentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	student, err := h.services.StudentService.CreateStudent(r.Context(), req.Student())
	if err != nil {
		h.writeError(w, r, err, studentValidation)
		return
	}

	_, _ = utils.WriteJSON(w, student, http.StatusCreated)
}

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r.URL.Query())

	students, err := h.services.StudentService.ListStudents(r.Context(), opts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, students, http.StatusOK)
}

func (h *Handler) getStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	student, err := h.services.StudentService.GetStudent(r.Context(), id, includesCourse(r.URL.Query()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, student, http.StatusOK)
}

func (h *Handler) updateStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.StudentUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	student, err := h.services.StudentService.UpdateStudent(r.Context(), id, update, includesCourse(r.URL.Query()))
	if err != nil {
		h.writeError(w, r, err, studentValidation)
		return
	}

	_, _ = utils.WriteJSON(w, student, http.StatusOK)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.StudentService.DeleteStudent(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: deletedMessage}, http.StatusOK)
}
