package wb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-market-api/internal/models"
	"github.com/pribylovaa/go-market-api/internal/pkg/log"
)

// epochZero подставляется вместо отсутствующей даты отзыва —
// так же поступает сам апстрим.
var epochZero = time.Unix(0, 0).UTC()

// decodeProducts превращает сырую страницу в список доменных товаров.
//
// Декодирование никогда не возвращает ошибку: битые элементы и элементы
// без обязательного id пропускаются с записью в лог, результат —
// best-effort часть страницы.
func decodeProducts(ctx context.Context, raw []byte) []models.Product {
	const op = "wb/decode/decodeProducts"

	lg := log.From(ctx)

	var env pageEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		lg.Warn("page_decode_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil
	}

	items := env.Products
	if len(items) == 0 {
		items = env.Data.Products
	}

	var output []models.Product
	for _, item := range items {
		var rp rawProduct
		if err := json.Unmarshal(item, &rp); err != nil {
			lg.Warn("product_decode_skipped",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			continue
		}

		if rp.ID == 0 {
			lg.Warn("product_without_id_skipped", slog.String("op", op))
			continue
		}

		output = append(output, toProduct(rp))
	}

	return output
}

// toProduct применяет правила нормализации к одному сырому товару.
func toProduct(rp rawProduct) models.Product {
	var price float64
	if len(rp.Sizes) > 0 {
		p := rp.Sizes[0].Price
		raw := p.Product
		if raw == 0 {
			raw = p.Total
		}
		price = float64(raw) / 100
	}

	rating := rp.ReviewRating
	if rating == 0 {
		rating = rp.NmReviewRating
	}
	if rating == 0 {
		rating = rp.Rating
	}

	root := rp.Root
	if root == 0 {
		root = rp.ID
	}

	return models.Product{
		ID:        rp.ID,
		Name:      rp.Name,
		Price:     price,
		Rating:    rating,
		Link:      ProductLink(rp.ID),
		Feedbacks: rp.Feedbacks,
		SubjectID: rp.SubjectID,
		Root:      root,
	}
}

// decodeFeedbacks превращает сырую страницу отзывов в доменные записи.
// Возвращает также заявленное апстримом общее число отзывов.
func decodeFeedbacks(ctx context.Context, raw []byte, productNM int64) ([]models.Feedback, int) {
	const op = "wb/decode/decodeFeedbacks"

	lg := log.From(ctx)

	var env feedbackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		lg.Warn("feedback_page_decode_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, 0
	}

	var output []models.Feedback
	for _, item := range env.Feedbacks {
		var rf rawFeedback
		if err := json.Unmarshal(item, &rf); err != nil {
			lg.Warn("feedback_decode_skipped",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			continue
		}

		if rf.ID == "" {
			lg.Warn("feedback_without_id_skipped", slog.String("op", op))
			continue
		}

		created := epochZero
		if rf.CreatedDate != "" {
			if t, err := time.Parse(time.RFC3339, rf.CreatedDate); err == nil {
				created = t.UTC()
			} else {
				lg.Warn("feedback_date_parse_failed",
					slog.String("op", op),
					slog.String("value", rf.CreatedDate),
					slog.String("err", err.Error()),
				)
			}
		}

		output = append(output, models.Feedback{
			ID:        rf.ID,
			Text:      rf.Text,
			Pros:      rf.Pros,
			Cons:      rf.Cons,
			Rating:    rf.ProductValuation,
			CreatedAt: created,
			UserName:  rf.WBUserDetails.Name,
			ProductNM: productNM,
		})
	}

	return output, env.FeedbackCount
}

// ProductLink строит каноническую ссылку на карточку товара.
func ProductLink(id int64) string {
	return fmt.Sprintf("https://www.wildberries.ru/catalog/%d/detail.aspx", id)
}
