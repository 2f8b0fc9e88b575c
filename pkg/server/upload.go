package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/core/services"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

const (
	maxUploadSize      = 32 << 20
	maxUploadMemory    = 8 << 20
	zipFileName        = "schedules.zip"
	rejectedRowsHeader = "X-Rejected-Rows"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.fail(w, r, http.StatusBadRequest, "Invalid upload", err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	input, inputHeader, err := r.FormFile("inputFile")
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "Required input file missing", err)
		return
	}
	defer input.Close()

	data, err := io.ReadAll(input)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "Could not read input file", err)
		return
	}

	policy, err := s.uploadPolicy(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "Invalid settings file", err)
		return
	}

	footer, err := s.uploadFooter(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "Invalid footer file", err)
		return
	}

	source := workbook.UploadSource{Filename: inputHeader.Filename, Data: data, Layout: s.opts.Layout}
	load, err := services.LoadShifts(r.Context(), []services.RowSource{source}, policy, s.logger)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "Could not read input file", err)
		return
	}

	result, err := services.GenerateSchedules(r.Context(), load, workbook.NewWriter(footer), s.logger)
	if errors.Is(err, services.ErrNoShifts) {
		s.fail(w, r, http.StatusUnprocessableEntity, "No valid shifts found in input file", err)
		return
	}
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "Could not create schedules", err)
		return
	}

	archive, err := services.ZipOutputs(result.Files)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "Could not create schedules", err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", zipFileName))
	w.Header().Set(rejectedRowsHeader, strconv.Itoa(len(load.Failures)))
	_, _ = w.Write(archive)
}

// uploadPolicy merges an uploaded settings file over the base directory
func (s *Server) uploadPolicy(r *http.Request) (schedule.Policy, error) {
	policy := s.opts.Policy
	merged := schedule.StaticDirectory{}
	merged.Merge(s.opts.Directory)
	policy.Directory = merged

	file, header, ok, err := optionalFile(r, "settingsFile")
	if err != nil || !ok {
		return policy, err
	}
	defer file.Close()

	uploaded, err := workbook.LoadSettingsDirectory(file, header.Filename)
	if err != nil {
		return policy, err
	}
	merged.Merge(uploaded)
	return policy, nil
}

func (s *Server) uploadFooter(r *http.Request) (workbook.Footer, error) {
	file, _, ok, err := optionalFile(r, "footerFile")
	if err != nil || !ok {
		return s.opts.Footer, err
	}
	defer file.Close()

	return workbook.PrepareFooter(file)
}

// optionalFile returns ok=false when the field is absent or was submitted without a file
func optionalFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, bool, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, err
	}
	if header.Size == 0 {
		file.Close()
		return nil, nil, false, nil
	}
	return file, header, true, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	s.logger.Warn(message, zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	http.Error(w, message, status)
}
