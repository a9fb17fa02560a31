package api

import (
	"net/http"

	"github.com/chainview-labs/storage-value-api/types"
)

func (s *Server) handleValueGet(w http.ResponseWriter, r *http.Request) {
	value, err := s.reader.LatestValue(r.Context())
	if err != nil {
		s.chainError(w, err)
		return
	}

	JSON(w, http.StatusOK, "current contract value", types.ValueSnapshot{Value: value})
}
