package wb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pribylovaa/go-market-api/internal/config"
	"github.com/pribylovaa/go-market-api/internal/models"
	"github.com/pribylovaa/go-market-api/internal/pkg/log"
)

// ErrNotFound — апстрим ответил 404: запрошенного объекта не существует.
// Отличается от транзиентных сбоев — не ретраится.
var ErrNotFound = errors.New("upstream: not found")

// Client выполняет постраничные запросы к пяти формам эндпойнтов площадки:
// поиск, карточка, страница отзывов, каталог продавца, справочник брендов.
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.).
type Client struct {
	client *http.Client
	cfg    config.WBConfig
}

// New создаёт клиент апстрима.
func New(client *http.Client, cfg config.WBConfig) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{client: client, cfg: cfg}
}

// SearchPage загружает одну страницу поисковой выдачи.
// sort — параметр апстрима (priceup/pricedown).
func (c *Client) SearchPage(ctx context.Context, query, sort string, page int) ([]models.Product, error) {
	const op = "wb/client/SearchPage"

	params := url.Values{
		"query":              {query},
		"page":               {strconv.Itoa(page)},
		"sort":               {sort},
		"curr":               {c.cfg.Currency},
		"spp":                {"100"},
		"dest":               {c.cfg.Destination},
		"hide_dtype":         {"10"},
		"appType":            {"1"},
		"lang":               {"ru"},
		"resultset":          {"catalog"},
		"suppressSpellcheck": {"false"},
	}

	body, err := c.do(ctx, op, c.cfg.SearchURL, params)
	if err != nil {
		return nil, err
	}

	return decodeProducts(ctx, body), nil
}

// ProductByID загружает карточку товара по идентификатору.
// Апстрим отвечает той же формой страницы, что и поиск.
func (c *Client) ProductByID(ctx context.Context, id int64) ([]models.Product, error) {
	const op = "wb/client/ProductByID"

	params := url.Values{
		"appType":    {"1"},
		"curr":       {c.cfg.Currency},
		"dest":       {c.cfg.Destination},
		"spp":        {"30"},
		"hide_dtype": {"13;14"},
		"ab_testing": {"false"},
		"lang":       {"ru"},
		"nm":         {strconv.FormatInt(id, 10)},
	}

	body, err := c.do(ctx, op, c.cfg.DetailURL, params)
	if err != nil {
		return nil, err
	}

	return decodeProducts(ctx, body), nil
}

// SupplierPage загружает одну страницу каталога продавца.
func (c *Client) SupplierPage(ctx context.Context, supplierID int64, page int) ([]models.Product, error) {
	const op = "wb/client/SupplierPage"

	params := url.Values{
		"appType":    {"1"},
		"brand":      {strconv.FormatInt(supplierID, 10)},
		"curr":       {c.cfg.Currency},
		"dest":       {c.cfg.Destination},
		"spp":        {"30"},
		"hide_dtype": {"13;14"},
		"ab_testing": {"false"},
		"lang":       {"ru"},
		"page":       {strconv.Itoa(page)},
		"sort":       {"popular"},
	}

	body, err := c.do(ctx, op, c.cfg.CatalogURL, params)
	if err != nil {
		return nil, err
	}

	return decodeProducts(ctx, body), nil
}

// FeedbackPage загружает одну страницу отзывов по групповому идентификатору
// карточки. Второе значение — заявленное апстримом общее число отзывов.
func (c *Client) FeedbackPage(ctx context.Context, productNM int64, page int) ([]models.Feedback, int, error) {
	const op = "wb/client/FeedbackPage"

	u := fmt.Sprintf("%s/feedbacks/v2/%d", c.cfg.FeedbackURL, productNM)
	params := url.Values{"page": {strconv.Itoa(page)}}

	body, err := c.do(ctx, op, u, params)
	if err != nil {
		return nil, 0, err
	}

	feedbacks, total := decodeFeedbacks(ctx, body, productNM)
	return feedbacks, total, nil
}

// BrandByName загружает идентификаторы продавца из справочника брендов.
// Возвращает ErrNotFound, если бренд неизвестен площадке либо в ответе
// нет пригодных идентификаторов.
func (c *Client) BrandByName(ctx context.Context, name string) (*models.Brand, error) {
	const op = "wb/client/BrandByName"

	u := fmt.Sprintf("%s/vol0/data/brands/%s.json", c.cfg.BrandURL, url.PathEscape(name))

	body, err := c.do(ctx, op, u, nil)
	if err != nil {
		return nil, err
	}

	var resp brandResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	if resp.ID == 0 || resp.SiteID == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return &models.Brand{SupplierID: resp.ID, SiteID: resp.SiteID}, nil
}

// do выполняет GET с контекстом и возвращает тело ответа.
// Не-2xx статус — ошибка; 404 дополнительно помечается ErrNotFound.
func (c *Client) do(ctx context.Context, op, rawURL string, params url.Values) ([]byte, error) {
	u := rawURL
	if len(params) > 0 {
		u = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.From(ctx).Warn("http_error",
			slog.String("op", op),
			slog.String("url", rawURL),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read_body: %w", op, err)
	}

	return body, nil
}
