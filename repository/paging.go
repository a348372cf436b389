package repository

const (
	defaultLimit = 20
	maxLimit     = 200
)

// paging normalizes page/limit the same way for every list endpoint.
func paging(page, limit int) (int, int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}
