package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shiosayi/internal/app"
	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/internal/store"
)

// errorStatuses is matched in order; service errors wrap store errors, so the
// more specific store sentinels come first.
var errorStatuses = []struct {
	target error
	status int
	msg    string
}{
	{store.ErrReplicaNotFound, http.StatusServiceUnavailable, app.MsgSnapshotUnavailable},
	{store.ErrOpeningReplica, http.StatusInternalServerError, app.MsgInternalServerError},
	{service.ErrSnapshotUnavailable, http.StatusServiceUnavailable, app.MsgSnapshotUnavailable},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError, app.MsgVersionIsNotSpecified},
}

// responseFromError picks the status and the public message for err.
func responseFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := responseFromError(err)
	http.Error(w, msg, status)
}
