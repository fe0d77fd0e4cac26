package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/config"
	"school-api/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	classViewCachePrefix = "class_view"
	classViewCacheExpire = 300 // 5分钟
)

// IClassViewCacheMapper caches the populated class detail so roster
// reads do not fan out into user lookups on every request. Roster
// mutations must Delete the entry.
type IClassViewCacheMapper interface {
	Get(ctx context.Context, id string) (*school.ClassInfo, error)
	Set(ctx context.Context, id string, data *school.ClassInfo) error
	Delete(ctx context.Context, id string) error
}

type ClassViewCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewClassViewCacheMapper(config *config.Config) *ClassViewCacheMapper {
	return &ClassViewCacheMapper{
		rds: redis.GetRedis(config),
	}
}

func (m *ClassViewCacheMapper) Get(ctx context.Context, id string) (*school.ClassInfo, error) {
	cachedData, err := m.rds.GetCtx(ctx, m.buildCacheKey(id))
	if err != nil {
		return nil, err
	}
	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result school.ClassInfo
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}
	return &result, nil
}

func (m *ClassViewCacheMapper) Set(ctx context.Context, id string, data *school.ClassInfo) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}
	return m.rds.SetexCtx(ctx, m.buildCacheKey(id), string(raw), classViewCacheExpire)
}

func (m *ClassViewCacheMapper) Delete(ctx context.Context, id string) error {
	_, err := m.rds.DelCtx(ctx, m.buildCacheKey(id))
	return err
}

func (m *ClassViewCacheMapper) buildCacheKey(id string) string {
	return fmt.Sprintf("%s:%s", classViewCachePrefix, id)
}
