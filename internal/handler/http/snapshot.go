// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/utils"
)

const snapshotContentType = "application/vnd.sqlite3"

// getSnapshot streams the authoritative snapshot. The digest doubles as a
// strong ETag, so conditional and range requests are handled by
// http.ServeContent.
func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	f, info, err := h.services.SnapshotService.Open(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSnapshot").Msg("error opening snapshot")
		writeError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", snapshotContentType)
	w.Header().Set("ETag", `"`+info.Digest+`"`)
	w.Header().Set("Cache-Control", "no-cache")

	http.ServeContent(w, r, info.Name, info.ModTime, f)
}

// getManifest serves the sha256sum-style checksum line for the snapshot.
func (h *Handler) getManifest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	info, err := h.services.SnapshotService.Info(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getManifest").Msg("error getting snapshot digest")
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	if _, err = utils.WriteText(w, info.ManifestLine(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getManifest").Msg("error writing manifest")
	}
}

// getSnapshotInfo reports the snapshot metadata as JSON.
func (h *Handler) getSnapshotInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	info, err := h.services.SnapshotService.Info(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSnapshotInfo").Msg("error getting snapshot info")
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getSnapshotInfo").Msg("error writing snapshot info")
	}
}
