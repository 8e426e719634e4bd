package api

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/pkg/handlers"
	"github.com/surjithprasanna/proz-portal/pkg/routes"
	"github.com/surjithprasanna/proz-portal/pkg/storage"
)

// attachmentHandler stores intake attachments and proposal documents in blob
// storage. Uploads are admin-gated; downloads are keyed by unguessable blob
// paths and stay public so attachment URLs work from both portals.
type attachmentHandler struct {
	store     storage.System
	logger    *slog.Logger
	maxUpload int64
}

func newAttachmentHandler(store storage.System, logger *slog.Logger, maxUpload int64) *attachmentHandler {
	return &attachmentHandler{
		store:     store,
		logger:    logger.With("handler", "attachments"),
		maxUpload: maxUpload,
	}
}

func (h *attachmentHandler) uploadRoutes() routes.Group {
	return routes.Group{
		Prefix: "/attachments",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.upload},
		},
	}
}

func (h *attachmentHandler) downloadRoutes() routes.Group {
	return routes.Group{
		Prefix: "/attachments",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{key...}", Handler: h.download},
		},
	}
}

// upload accepts a multipart form with a single "file" field and returns the
// stored attachment descriptor.
func (h *attachmentHandler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	name := path.Base(header.Filename)
	key := uuid.New().String() + "/" + name

	if err := h.store.Upload(r.Context(), key, file, contentType); err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}

	h.logger.Info("attachment uploaded", "key", key, "size", header.Size)

	handlers.RespondJSON(w, http.StatusCreated, map[string]string{
		"name": name,
		"url":  "/api/attachments/" + key,
		"type": contentType,
	})
}

// download streams a stored attachment.
func (h *attachmentHandler) download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	body, err := h.store.Download(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(strings.ToLower(path.Ext(key)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", path.Base(key)),
	)
	w.WriteHeader(http.StatusOK)
	io.Copy(w, body)
}
