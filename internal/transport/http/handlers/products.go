package handlers

import (
	"net/http"
	"strconv"

	"github.com/pribylovaa/go-market-api/internal/service"
	apierrors "github.com/pribylovaa/go-market-api/internal/transport/http/errors"
)

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query, err := requiredParam(r, "query")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	sortOrder := r.URL.Query().Get("sort")
	if sortOrder == "" {
		sortOrder = "cheap"
	}

	pages, err := pagesParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	products, err := h.Service.SearchProducts(r.Context(), query, sortOrder, pages)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProductsResponse{Count: len(products), Products: products})
}

func (h *Handlers) TopProducts(w http.ResponseWriter, r *http.Request) {
	query, err := requiredParam(r, "query")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	pages, err := pagesParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	top, err := h.Service.TopProducts(r.Context(), query, pages)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, top)
}

// ProductByLink отдаёт исходный товар и подобранные альтернативы.
func (h *Handlers) ProductByLink(w http.ResponseWriter, r *http.Request) {
	link, err := requiredParam(r, "link")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	pages, err := pagesParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	alternatives, err := h.Service.Alternatives(r.Context(), link, pages)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, alternatives)
}

func (h *Handlers) PriceRange(w http.ResponseWriter, r *http.Request) {
	query, err := requiredParam(r, "query")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	pages, err := pagesParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	stats, err := h.Service.PriceRange(r.Context(), query, pages)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handlers) Feedbacks(w http.ResponseWriter, r *http.Request) {
	link, err := requiredParam(r, "link")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	feedbacks, err := h.Service.Feedbacks(r.Context(), link)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FeedbacksResponse{Count: len(feedbacks), Feedbacks: feedbacks})
}

func (h *Handlers) ProductsBySupplier(w http.ResponseWriter, r *http.Request) {
	raw, err := requiredParam(r, "supplier_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	supplierID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || supplierID <= 0 {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	pages, err := pagesParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	products, err := h.Service.ProductsBySupplier(r.Context(), supplierID, pages)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProductsResponse{Count: len(products), Products: products})
}

func (h *Handlers) SupplierIDsByBrand(w http.ResponseWriter, r *http.Request) {
	brandURL, err := requiredParam(r, "brand_url")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	brand, err := h.Service.SupplierIDsByBrand(r.Context(), brandURL)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, brand)
}
