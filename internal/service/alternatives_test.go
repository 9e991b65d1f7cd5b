package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-market-api/internal/models"
	"github.com/pribylovaa/go-market-api/mocks"
)

// primeAlternatives кладёт в кэш карточку исходного товара и обе поисковые
// выдачи — тест проверяет только компаратор, без походов в апстрим.
func primeAlternatives(store *mocks.MockCache, original models.Product, pool []models.Product) {
	cacheHit(store, productKey(testLink), []models.Product{original})
	cacheHit(store, searchKey(original.Name, "cheap", 2), pool)
	cacheHit(store, searchKey(original.Name, "expensive", 2), pool)
}

// TestAlternatives — базовые свойства компаратора: не больше трёх в каждом
// списке, «дешевле» по возрастанию цены, «не хуже по рейтингу» по убыванию,
// исходный товар исключён из обоих списков.
func TestAlternatives(t *testing.T) {
	t.Parallel()

	svc, _, store := newTestService(t)

	original := models.Product{
		ID: 166361960, Name: "чайник", Price: 1000, Rating: 4.0,
		SubjectID: 77, Root: 555,
	}
	pool := []models.Product{
		original,
		{ID: 2, Price: 400, Rating: 3.5, SubjectID: 77},
		{ID: 3, Price: 600, Rating: 4.6, SubjectID: 77},
		{ID: 4, Price: 800, Rating: 4.2, SubjectID: 77},
		{ID: 5, Price: 950, Rating: 3.0, SubjectID: 77},
		{ID: 6, Price: 1200, Rating: 4.9, SubjectID: 77},
		{ID: 7, Price: 1500, Rating: 4.1, SubjectID: 77},
	}
	primeAlternatives(store, original, pool)

	got, err := svc.Alternatives(context.Background(), testLink, 2)
	require.NoError(t, err)
	require.Equal(t, original, got.Original)

	require.Len(t, got.BetterPrice, 3)
	require.True(t, sort.SliceIsSorted(got.BetterPrice, func(i, j int) bool {
		return got.BetterPrice[i].Price < got.BetterPrice[j].Price
	}))
	for _, p := range got.BetterPrice {
		require.NotEqual(t, original.ID, p.ID)
		require.LessOrEqual(t, p.Price, original.Price)
	}

	require.Len(t, got.BetterRating, 3)
	require.True(t, sort.SliceIsSorted(got.BetterRating, func(i, j int) bool {
		return got.BetterRating[i].Rating > got.BetterRating[j].Rating
	}))
	for _, p := range got.BetterRating {
		require.NotEqual(t, original.ID, p.ID)
		require.GreaterOrEqual(t, p.Rating, original.Rating)
	}
}

// TestAlternatives_PriceFloor — кандидаты дешевле 10% цены исходного товара
// отбрасываются как шум данных.
func TestAlternatives_PriceFloor(t *testing.T) {
	t.Parallel()

	svc, _, store := newTestService(t)

	original := models.Product{
		ID: 166361960, Name: "чайник", Price: 1000, Rating: 4.0,
		SubjectID: 77, Root: 555,
	}
	pool := []models.Product{
		original,
		{ID: 2, Price: 50, Rating: 5.0, SubjectID: 77},
		{ID: 3, Price: 100, Rating: 4.5, SubjectID: 77},
	}
	primeAlternatives(store, original, pool)

	got, err := svc.Alternatives(context.Background(), testLink, 2)
	require.NoError(t, err)

	// 50 < 100 (порог) — исключён; 100 — ровно на пороге, остаётся.
	require.Len(t, got.BetterPrice, 1)
	require.Equal(t, int64(3), got.BetterPrice[0].ID)
	require.Len(t, got.BetterRating, 1)
	require.Equal(t, int64(3), got.BetterRating[0].ID)
}

// TestAlternatives_SubjectFilter — кандидаты из другой категории исключаются.
func TestAlternatives_SubjectFilter(t *testing.T) {
	t.Parallel()

	svc, _, store := newTestService(t)

	original := models.Product{
		ID: 166361960, Name: "чайник", Price: 1000, Rating: 4.0,
		SubjectID: 77, Root: 555,
	}
	pool := []models.Product{
		{ID: 2, Price: 500, Rating: 4.8, SubjectID: 99},
		{ID: 3, Price: 500, Rating: 4.8, SubjectID: 77},
	}
	primeAlternatives(store, original, pool)

	got, err := svc.Alternatives(context.Background(), testLink, 2)
	require.NoError(t, err)
	require.Len(t, got.BetterPrice, 1)
	require.Equal(t, int64(3), got.BetterPrice[0].ID)
}

// TestAlternatives_MinFeedbacks — порог по числу отзывов из конфига.
func TestAlternatives_MinFeedbacks(t *testing.T) {
	t.Parallel()

	svc, _, store := newTestService(t)
	svc.cfg.Compare.MinFeedbacks = 10

	original := models.Product{
		ID: 166361960, Name: "чайник", Price: 1000, Rating: 4.0,
		SubjectID: 77, Root: 555,
	}
	pool := []models.Product{
		{ID: 2, Price: 500, Rating: 4.8, SubjectID: 77, Feedbacks: 3},
		{ID: 3, Price: 600, Rating: 4.8, SubjectID: 77, Feedbacks: 25},
	}
	primeAlternatives(store, original, pool)

	got, err := svc.Alternatives(context.Background(), testLink, 2)
	require.NoError(t, err)
	require.Len(t, got.BetterPrice, 1)
	require.Equal(t, int64(3), got.BetterPrice[0].ID)
}

// TestDedupeByID — первое вхождение побеждает, порядок сохраняется.
func TestDedupeByID(t *testing.T) {
	t.Parallel()

	input := []models.Product{
		{ID: 1, Name: "a"}, {ID: 2, Name: "b"},
		{ID: 1, Name: "a-dup"}, {ID: 3, Name: "c"},
	}

	got := dedupeByID(input)
	require.Len(t, got, 3)
	require.Equal(t, "a", got[0].Name)
	require.Equal(t, "b", got[1].Name)
	require.Equal(t, "c", got[2].Name)
}
