package types

// UpdateEvent is one decoded ValueUpdated log entry. Block number and value
// are decimal strings so uint256 values survive JSON consumers that only
// have float64.
type UpdateEvent struct {
	BlockNumber string `json:"blockNumber"`
	Value       string `json:"value"`
	TxHash      string `json:"txHash"`
	LogIndex    uint   `json:"logIndex"`
}

// ValueSnapshot is the contract's current stored value.
type ValueSnapshot struct {
	Value string `json:"value"`
}

// Pagination describes one window over an ordered event list.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination computes the window metadata for a 1-based page over
// totalItems items.
func NewPagination(page, pageSize, totalItems int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}

	return Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// PaginatedEvents is one page of update events plus its window metadata.
type PaginatedEvents struct {
	Events     []UpdateEvent `json:"events"`
	Pagination Pagination    `json:"pagination"`
}
