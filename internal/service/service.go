// service содержит бизнес-логику market-сервиса: кэширующие обёртки над
// пагинированной загрузкой из апстрима, подбор альтернатив и агрегаты цен.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pribylovaa/go-market-api/internal/cache"
	"github.com/pribylovaa/go-market-api/internal/config"
	"github.com/pribylovaa/go-market-api/internal/models"
	"github.com/pribylovaa/go-market-api/internal/pkg/log"
)

var (
	// ErrNotFound — по запросу нет пригодной записи (товар/бренд).
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы (битая ссылка и т.п.).
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstream — первичный запрос к апстриму не удался после всей
	// предусмотренной обработки ошибок. Транспорт: 502.
	ErrUpstream = errors.New("upstream failure")
)

// Upstream — контракт клиента внутренних API площадки.
// Пять форм эндпойнтов: поиск, карточка, каталог продавца, отзывы, бренды.
type Upstream interface {
	// SearchPage загружает страницу поисковой выдачи; sort — параметр
	// апстрима (priceup/pricedown).
	SearchPage(ctx context.Context, query, sort string, page int) ([]models.Product, error)
	// ProductByID загружает карточку товара.
	ProductByID(ctx context.Context, id int64) ([]models.Product, error)
	// SupplierPage загружает страницу каталога продавца.
	SupplierPage(ctx context.Context, supplierID int64, page int) ([]models.Product, error)
	// FeedbackPage загружает страницу отзывов; второе значение —
	// заявленное апстримом общее число отзывов.
	FeedbackPage(ctx context.Context, productNM int64, page int) ([]models.Feedback, int, error)
	// BrandByName загружает идентификаторы продавца по имени бренда.
	BrandByName(ctx context.Context, name string) (*models.Brand, error)
}

// Service — бизнес-логика market-сервиса.
type Service struct {
	upstream Upstream
	cache    cache.Cache
	cfg      config.Config
}

// New создает новый экземпляр Service.
func New(upstream Upstream, cache cache.Cache, cfg config.Config) *Service {
	return &Service{
		upstream: upstream,
		cache:    cache,
		cfg:      cfg,
	}
}

// cacheGet читает запись кэша в dest и возвращает признак попадания.
// Промах и недоступность кэша ведут себя одинаково (идём в апстрим),
// но логируются по-разному.
func (s *Service) cacheGet(ctx context.Context, op, key string, dest any) bool {
	lg := log.From(ctx)

	err := s.cache.Get(ctx, key, dest)
	switch {
	case err == nil:
		return true
	case errors.Is(err, cache.ErrMiss):
		lg.Debug("cache_miss",
			slog.String("op", op),
			slog.String("key", key),
		)
	case errors.Is(err, cache.ErrUnavailable):
		lg.Warn("cache_unavailable",
			slog.String("op", op),
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	default:
		lg.Warn("cache_error",
			slog.String("op", op),
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	}

	return false
}

// cacheSet пишет запись с настроенным TTL. Кэш — best-effort: ошибка
// записи логируется и глотается, операция от неё не падает.
func (s *Service) cacheSet(ctx context.Context, op, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.From(ctx).Warn("cache_set_failed",
			slog.String("op", op),
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
		return
	}

	log.From(ctx).Debug("cache_set_ok",
		slog.String("op", op),
		slog.String("key", key),
	)
}
