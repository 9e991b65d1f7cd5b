// handlers — REST-обработчики поверх бизнес-логики сервиса.
// Слой тонкий: разбор query-параметров, вызов сервиса, сериализация ответа.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pribylovaa/go-market-api/internal/models"
	"github.com/pribylovaa/go-market-api/internal/service"
)

// defaultPages — число страниц выдачи по умолчанию.
const defaultPages = 3

// Service — контракт бизнес-логики, потребляемый REST-слоем.
// Реализуется *service.Service.
type Service interface {
	SearchProducts(ctx context.Context, query, sortOrder string, pages int) ([]models.Product, error)
	TopProducts(ctx context.Context, query string, pages int) (*models.TopProducts, error)
	ProductByLink(ctx context.Context, link string) (*models.Product, error)
	Alternatives(ctx context.Context, link string, pages int) (*models.Alternatives, error)
	PriceRange(ctx context.Context, query string, pages int) (*models.PriceRange, error)
	Feedbacks(ctx context.Context, link string) ([]models.Feedback, error)
	ProductsBySupplier(ctx context.Context, supplierID int64, pages int) ([]models.Product, error)
	SupplierIDsByBrand(ctx context.Context, brandURL string) (*models.Brand, error)
}

// Handlers агрегирует зависимости REST-слоя.
type Handlers struct {
	Service Service
}

func New(s Service) *Handlers {
	return &Handlers{Service: s}
}

// ProductsResponse — список товаров с количеством.
type ProductsResponse struct {
	Count    int              `json:"count"`
	Products []models.Product `json:"products"`
}

// FeedbacksResponse — список отзывов с количеством.
type FeedbacksResponse struct {
	Count     int               `json:"count"`
	Feedbacks []models.Feedback `json:"feedbacks"`
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// pagesParam читает параметр pages; пустое значение — defaultPages.
func pagesParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("pages")
	if v == "" {
		return defaultPages, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("bad pages %q: %w", v, service.ErrInvalidArgument)
	}

	return n, nil
}

// requiredParam читает обязательный query-параметр.
func requiredParam(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", fmt.Errorf("missing %s: %w", name, service.ErrInvalidArgument)
	}

	return v, nil
}
