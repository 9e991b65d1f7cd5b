package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/pribylovaa/go-market-api/internal/cache"
	"github.com/pribylovaa/go-market-api/internal/config"
	"github.com/pribylovaa/go-market-api/mocks"
)

// newTestService собирает сервис на gomock-заглушках апстрима и кэша
// с боевыми значениями политики загрузки (бэкофф и паузы обнулены,
// чтобы тесты не спали).
func newTestService(t *testing.T) (*Service, *mocks.MockUpstream, *mocks.MockCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	upstream := mocks.NewMockUpstream(ctrl)
	store := mocks.NewMockCache(ctrl)

	cfg := config.Config{
		Cache: config.CacheConfig{TTL: 20 * time.Minute},
		Fetch: config.FetchConfig{
			MaxPages:            10000,
			SearchConcurrency:   10,
			SupplierConcurrency: 5,
			SupplierRetries:     3,
			FeedbackMaxPages:    100,
		},
		Compare: config.CompareConfig{MinFeedbacks: 0},
	}

	return New(upstream, store, cfg), upstream, store
}

// missAll — любой ключ даёт промах, любая запись принимается.
func missAll(store *mocks.MockCache) {
	store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.ErrMiss).AnyTimes()
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()
}
