// fetch — пагинированная загрузка многостраничных выдач апстрима.
//
// Оркестратор выпускает страницы окнами размера Concurrency, внутри окна
// запросы идут параллельно. Первая «по-настоящему пустая» страница (без
// ошибки и без записей) означает конец выдачи: контекст окна отменяется,
// следующие окна не стартуют. Оркестратор всегда дожидается завершения
// всех запущенных страниц до возврата — после возврата незавершённой
// работы не остаётся.
package fetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-market-api/internal/pkg/log"
)

// PageFunc загружает одну страницу с 1-базовым номером.
// Пустой результат без ошибки — терминальный сигнал «страниц больше нет».
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Options — политика загрузки.
type Options struct {
	// MaxPages — верхняя граница числа страниц (>=1).
	MaxPages int
	// Concurrency — размер окна одновременных запросов (>=1).
	Concurrency int
	// Retries — число попыток на страницу; <=1 означает одну попытку
	// (ошибка логируется, страница даёт ноль записей, но конец выдачи
	// этим не объявляется).
	Retries int
	// Backoff — шаг линейного бэкоффа между попытками: пауза = Backoff × номер попытки.
	Backoff time.Duration
	// Pacing — фиксированная пауза после каждой успешной страницы,
	// чтобы не упереться в троттлинг апстрима.
	Pacing time.Duration
}

// outcome — результат одной страницы. Номер страницы носится рядом с
// результатом явно, а не восстанавливается по позиции задачи.
type outcome[T any] struct {
	page    int
	records []T
	err     error
}

// Pages загружает до opts.MaxPages страниц и возвращает накопленные записи.
//
// Гарантии:
//   - завершение: либо исчерпаны MaxPages, либо встречена пустая страница,
//     либо отменён ctx;
//   - тишина: все запущенные горутины завершены к моменту возврата;
//   - ошибка страницы никогда не прерывает операцию целиком — страница
//     просто даёт ноль записей.
//
// Внутри одного окна порядок завершения определяется сетью, поэтому после
// отмены часть «соседей» пустой страницы может успеть отдать данные — они
// включаются в результат (best-effort, не строгий префикс по номерам).
func Pages[T any](ctx context.Context, fn PageFunc[T], opts Options) []T {
	const op = "fetch/Pages"

	lg := log.From(ctx)

	maxPages := opts.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}
	conc := opts.Concurrency
	if conc < 1 {
		conc = 1
	}

	var output []T

	for start := 1; start <= maxPages; start += conc {
		if ctx.Err() != nil {
			return output
		}

		end := start + conc - 1
		if end > maxPages {
			end = maxPages
		}

		batchCtx, cancel := context.WithCancel(ctx)
		results := make(chan outcome[T], end-start+1)

		for page := start; page <= end; page++ {
			go func(page int) {
				records, err := fetchOne(batchCtx, fn, page, opts)
				results <- outcome[T]{page: page, records: records, err: err}
			}(page)
		}

		exhausted := false
		for i := 0; i < end-start+1; i++ {
			res := <-results

			if res.err != nil {
				lg.Warn("page_failed",
					slog.String("op", op),
					slog.Int("page", res.page),
					slog.String("err", res.err.Error()),
				)
				continue
			}

			if len(res.records) == 0 {
				if !exhausted {
					lg.Info("empty_page",
						slog.String("op", op),
						slog.Int("page", res.page),
					)
					exhausted = true
					cancel()
				}
				continue
			}

			output = append(output, res.records...)
		}

		cancel()

		if exhausted || ctx.Err() != nil {
			return output
		}
	}

	return output
}

// fetchOne выполняет до opts.Retries попыток загрузки одной страницы
// с линейным бэкоффом между ними и паузой Pacing после успеха.
func fetchOne[T any](ctx context.Context, fn PageFunc[T], page int, opts Options) ([]T, error) {
	const op = "fetch/fetchOne"

	attempts := opts.Retries
	if attempts < 1 {
		attempts = 1
	}

	lg := log.From(ctx)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		records, err := fn(ctx, page)
		if err == nil {
			if opts.Pacing > 0 && !sleep(ctx, opts.Pacing) {
				return records, nil
			}
			return records, nil
		}

		lastErr = err

		// Отмена окна — не повод для повторов.
		if ctx.Err() != nil {
			return nil, lastErr
		}

		if attempt < attempts {
			lg.Warn("page_attempt_failed",
				slog.String("op", op),
				slog.Int("page", page),
				slog.Int("attempt", attempt),
				slog.String("err", err.Error()),
			)
			if !sleep(ctx, opts.Backoff*time.Duration(attempt)) {
				return nil, lastErr
			}
		}
	}

	return nil, lastErr
}

// sleep ждёт d с уважением к контексту; false — контекст отменён раньше.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
