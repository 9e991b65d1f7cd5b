// cache — key/value кэш с TTL для результатов запросов к апстриму.
//
// Значения хранятся как JSON: кэшируются целые коллекции (список товаров
// или отзывов) под ключом, производным от параметров запроса. Записи
// неизменяемы после создания, поэтому конкурентные писатели одного ключа
// просто перезаписывают эквивалентные данные.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMiss — в кэше нет записи по ключу.
	// Вызывающий код переходит к загрузке из апстрима.
	ErrMiss = errors.New("cache miss")
	// ErrUnavailable — кэш-хранилище недоступно или запись не читается.
	// Обрабатывается как промах, но логируется отдельно.
	ErrUnavailable = errors.New("cache unavailable")
)

// Cache — минимальный контракт кэша.
type Cache interface {
	// Get читает запись по ключу и декодирует её JSON в dest.
	// Возвращает ErrMiss при отсутствии записи и ErrUnavailable при
	// недоступности хранилища либо нечитаемом значении.
	Get(ctx context.Context, key string, dest any) error
	// Set сохраняет value (JSON) с заданным TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete удаляет запись по ключу.
	Delete(ctx context.Context, key string) error
	// Close закрывает соединение с хранилищем.
	Close() error
}
