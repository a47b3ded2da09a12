package dto

// PageQuery is the shared pagination query-string block.
type PageQuery struct {
	Page     int `form:"page,default=1"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// Offset converts page/page_size to a row offset.
func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
