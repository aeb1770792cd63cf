package model

// Pagination is the page/page_size pair bound from the query string.
// The form defaults apply only when a parameter is absent; an explicit
// page_size=0 is kept and yields an empty, zero-page result.
type Pagination struct {
	Page     int `form:"page,default=1" json:"page"`
	PageSize int `form:"page_size,default=10" json:"page_size"`
}

// Offset computes the row offset. Pages below 1 are clamped to 1
// before the arithmetic: offset = (page-1) * page_size.
func (p Pagination) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PageSize
}

// Limit is the page size, unclamped.
func (p Pagination) Limit() int {
	return p.PageSize
}

// PageInfo is the pagination metadata attached to list responses.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// TotalPages is ceil(total/limit), defined as 0 when limit is not
// positive so a zero page size cannot fault.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// NewPageInfo assembles metadata for a paged query result.
func NewPageInfo(p Pagination, total int64) PageInfo {
	return PageInfo{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: TotalPages(total, p.Limit()),
	}
}

// PagedResult pairs one page of rows with its pagination metadata.
type PagedResult[T any] struct {
	List       []T      `json:"list"`
	Pagination PageInfo `json:"pagination"`
}
