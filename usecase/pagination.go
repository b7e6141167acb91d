// Package usecase contains the orchestrated business operations of the CRM.
// Each operation is a small type constructed with its repository
// dependencies and a single Execute entry point. Use cases are the only
// layer that checks business rules: they raise apperr values directly for
// rule violations and rewrap every unexpected store failure as an internal
// error, so no raw persistence error crosses this boundary.
package usecase

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePage clamps a 1-based page and page size into a store limit and
// offset. Non-positive pages start at 1; non-positive limits fall back to
// the default, so skip and take are always positive.
func normalizePage(page, limit int) (take, skip int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return limit, (page - 1) * limit
}
