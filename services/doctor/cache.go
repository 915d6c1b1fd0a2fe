package doctor

import (
	"context"
	"encoding/json"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// Cache failures are logged and otherwise ignored; Mongo stays the source of
// truth. A nil cache client disables caching entirely.

func (s *DefaultDoctorService) cachedDoctor(ctx context.Context, id string) *models.Doctor {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, utils.DoctorCachePrefix+id).Result()
	if err != nil {
		return nil
	}
	var doc models.Doctor
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		zap.L().Warn("Failed to decode cached doctor", zap.String("id", id), zap.Error(err))
		return nil
	}
	return &doc
}

func (s *DefaultDoctorService) cacheDoctor(ctx context.Context, doc *models.Doctor) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		zap.L().Warn("Failed to encode doctor for cache", zap.String("id", doc.ID), zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, utils.DoctorCachePrefix+doc.ID, raw, utils.ProfileCacheTTL).Err(); err != nil {
		zap.L().Warn("Failed to cache doctor", zap.String("id", doc.ID), zap.Error(err))
	}
}

func (s *DefaultDoctorService) dropCachedDoctor(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.DoctorCachePrefix+id).Err(); err != nil {
		zap.L().Warn("Failed to drop cached doctor", zap.String("id", id), zap.Error(err))
	}
}
