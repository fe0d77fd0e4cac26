package page

import (
	"school-api/biz/application/dto/basic"
	"school-api/biz/infrastructure/consts"
)

// ParsePageOpt 设置分页参数
func ParsePageOpt(p *basic.PaginationOptions) (skip int64, limit int64) {
	skip = int64(0)
	limit = consts.PageSize

	if p != nil && p.Page != nil && p.Limit != nil {
		skip = (*p.Page - 1) * *p.Limit
		limit = *p.Limit
	}
	return skip, limit
}
