package api

import (
	"net/http"
	"strconv"

	"github.com/chainview-labs/storage-value-api/chain"
)

// maxPageSize caps the limit query parameter, so a hostile value cannot
// request an unbounded page.
const maxPageSize = 100

func (s *Server) handleEventsGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	fromBlock := uint64(0)
	if raw := q.Get("fromBlock"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			ERROR(w, http.StatusBadRequest, "invalid fromBlock: must be a non-negative integer", nil)
			return
		}
		fromBlock = v
	}

	toBlock, latest := uint64(0), true
	if raw := q.Get("toBlock"); raw != "" && raw != "latest" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			ERROR(w, http.StatusBadRequest, `invalid toBlock: must be a non-negative integer or "latest"`, nil)
			return
		}
		toBlock, latest = v, false
	}

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	result, err := s.reader.ValueUpdatedEvents(r.Context(), fromBlock, toBlock, latest, page, limit)
	if err != nil {
		s.chainError(w, err)
		return
	}

	PAGINATED(w, http.StatusOK, "value update events", result.Events, result.Pagination)
}

// chainError maps the reader's closed error kinds onto HTTP statuses. The
// adapter never interprets errors beyond this switch.
func (s *Server) chainError(w http.ResponseWriter, err error) {
	switch chain.KindOf(err) {
	case chain.KindNotDeployed:
		s.log.Warn("contract read rejected", "error", err)
		ERROR(w, http.StatusBadRequest, err.Error(), nil)

	case chain.KindTimeout, chain.KindUnreachable:
		s.log.Error("rpc endpoint unavailable", "endpoint", s.reader.Endpoint(), "error", err)
		data := map[string]interface{}{
			"rpcUrl": s.reader.Endpoint(),
			"chain":  s.reader.ChainName(),
		}
		if id := s.reader.ChainID(); id != nil {
			data["chainId"] = id.String()
		}
		ERROR(w, http.StatusServiceUnavailable, err.Error(), data)

	default:
		s.log.Error("unclassified chain error", "error", err)
		ERROR(w, http.StatusInternalServerError, err.Error(), nil)
	}
}
