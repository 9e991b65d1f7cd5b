package wb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDecodeProducts_PriceAndRating — копейки делятся на 100,
// цена берётся из product с фолбэком на total, рейтинг — первая ненулевая
// из трёх форм.
func TestDecodeProducts_PriceAndRating(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"products":[
		{"id":101,"name":"a","reviewRating":4.7,
		 "sizes":[{"price":{"product":123450,"total":150000}}]},
		{"id":102,"name":"b","nmReviewRating":4.2,
		 "sizes":[{"price":{"product":0,"total":99900}}]},
		{"id":103,"name":"c","rating":3.9,"sizes":[]}
	]}`)

	got := decodeProducts(context.Background(), raw)
	require.Len(t, got, 3)

	require.Equal(t, 1234.5, got[0].Price)
	require.Equal(t, 4.7, got[0].Rating)

	require.Equal(t, 999.0, got[1].Price)
	require.Equal(t, 4.2, got[1].Rating)

	require.Equal(t, 0.0, got[2].Price)
	require.Equal(t, 3.9, got[2].Rating)
}

// TestDecodeProducts_RootFallback — отсутствующий root заменяется на id.
func TestDecodeProducts_RootFallback(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"products":[
		{"id":10,"root":77},
		{"id":20}
	]}`)

	got := decodeProducts(context.Background(), raw)
	require.Len(t, got, 2)
	require.Equal(t, int64(77), got[0].Root)
	require.Equal(t, int64(20), got[1].Root)
}

// TestDecodeProducts_SkipsBrokenItems — элементы без id и битые элементы
// пропускаются, остальная часть страницы сохраняется.
func TestDecodeProducts_SkipsBrokenItems(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"products":[
		{"name":"no-id"},
		{"id":"oops"},
		{"id":5,"name":"ok"}
	]}`)

	got := decodeProducts(context.Background(), raw)
	require.Len(t, got, 1)
	require.Equal(t, int64(5), got[0].ID)
	require.Equal(t, "https://www.wildberries.ru/catalog/5/detail.aspx", got[0].Link)
}

// TestDecodeProducts_NestedEnvelope — страница каталога заворачивает
// товары в data.products.
func TestDecodeProducts_NestedEnvelope(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"data":{"products":[{"id":42,"name":"nested"}]}}`)

	got := decodeProducts(context.Background(), raw)
	require.Len(t, got, 1)
	require.Equal(t, int64(42), got[0].ID)
}

// TestDecodeProducts_Garbage — нераспознаваемое тело даёт пустой результат
// без паники.
func TestDecodeProducts_Garbage(t *testing.T) {
	t.Parallel()

	require.Empty(t, decodeProducts(context.Background(), []byte("<html>")))
	require.Empty(t, decodeProducts(context.Background(), []byte(`{}`)))
}

// TestDecodeFeedbacks — обязательный id, подстановка нулевой эпохи вместо
// отсутствующей даты, заявленный total.
func TestDecodeFeedbacks(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"feedbackCount":57,"feedbacks":[
		{"id":"f1","text":"ok","productValuation":5,
		 "createdDate":"2024-03-01T10:00:00Z",
		 "wbUserDetails":{"name":"Анна"}},
		{"id":"f2","text":"no date","productValuation":3},
		{"text":"no id"}
	]}`)

	got, total := decodeFeedbacks(context.Background(), raw, 777)
	require.Equal(t, 57, total)
	require.Len(t, got, 2)

	require.Equal(t, "f1", got[0].ID)
	require.Equal(t, 5, got[0].Rating)
	require.Equal(t, "Анна", got[0].UserName)
	require.Equal(t, int64(777), got[0].ProductNM)
	require.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got[0].CreatedAt)

	require.Equal(t, epochZero, got[1].CreatedAt)
}
