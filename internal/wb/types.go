// wb — клиент внутренних JSON API маркетплейса и декодер их ответов.
package wb

import "encoding/json"

// pageEnvelope — конверт страницы каталога/поиска.
// Список товаров приходит либо на верхнем уровне ("products"), либо
// вложенным в "data.products" — зависит от конкретного эндпойнта.
// Элементы оставляем сырыми: каждый декодируется отдельно, чтобы
// один битый товар не ронял всю страницу.
type pageEnvelope struct {
	Products []json.RawMessage `json:"products"`
	Data     struct {
		Products []json.RawMessage `json:"products"`
	} `json:"data"`
}

// rawProduct — товар в том виде, в котором его отдаёт апстрим.
type rawProduct struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// Рейтинг может прийти в одном из трёх полей; порядок предпочтения —
	// reviewRating, nmReviewRating, rating.
	ReviewRating   float64 `json:"reviewRating"`
	NmReviewRating float64 `json:"nmReviewRating"`
	Rating         float64 `json:"rating"`
	Feedbacks      int     `json:"feedbacks"`
	SubjectID      int64   `json:"subjectId"`
	Root           int64   `json:"root"`
	Sizes          []struct {
		Price rawPrice `json:"price"`
	} `json:"sizes"`
}

// rawPrice — цена первого размера, в минорных единицах валюты.
// "product" — цена для покупателя, "total" — полная; предпочитаем первую.
type rawPrice struct {
	Product int64 `json:"product"`
	Total   int64 `json:"total"`
}

// feedbackEnvelope — конверт страницы отзывов.
type feedbackEnvelope struct {
	// FeedbackCount — заявленное апстримом общее число отзывов.
	FeedbackCount int               `json:"feedbackCount"`
	Feedbacks     []json.RawMessage `json:"feedbacks"`
}

// rawFeedback — отзыв в формате апстрима.
type rawFeedback struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	Pros             string `json:"pros"`
	Cons             string `json:"cons"`
	ProductValuation int    `json:"productValuation"`
	CreatedDate      string `json:"createdDate"`
	WBUserDetails    struct {
		Name string `json:"name"`
	} `json:"wbUserDetails"`
}

// brandResponse — ответ справочника брендов.
type brandResponse struct {
	ID     int64 `json:"id"`
	SiteID int64 `json:"siteId"`
}
