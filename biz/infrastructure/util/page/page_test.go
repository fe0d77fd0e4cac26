package page

import (
	"testing"

	"school-api/biz/application/dto/basic"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestParsePageOpt(t *testing.T) {
	tests := []struct {
		name      string
		opt       *basic.PaginationOptions
		wantSkip  int64
		wantLimit int64
	}{
		{"nil options", nil, 0, 10},
		{"empty options", &basic.PaginationOptions{}, 0, 10},
		{"first page", &basic.PaginationOptions{Page: lo.ToPtr[int64](1), Limit: lo.ToPtr[int64](20)}, 0, 20},
		{"third page", &basic.PaginationOptions{Page: lo.ToPtr[int64](3), Limit: lo.ToPtr[int64](5)}, 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := ParsePageOpt(tt.opt)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
