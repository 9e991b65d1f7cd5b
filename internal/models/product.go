// models содержит доменные сущности market-сервиса.
// Эти типы используются слоями бизнес-логики, кэша и транспорта:
// JSON-теги описывают и формат ответа REST, и формат записи в кэш.
package models

import "time"

// Product — доменная сущность товара маркетплейса.
//
// Особенности:
//   - ID назначается площадкой и уникален;
//   - Price — в основных единицах валюты (апстрим отдаёт копейки, делим на 100);
//   - Root — групповой идентификатор (связывает размеры/цвета одной карточки);
//     0 означает «root отсутствует».
type Product struct {
	// ID — идентификатор товара (nm id площадки).
	ID int64 `json:"id"`
	// Name — название товара.
	Name string `json:"name"`
	// Price — цена в основных единицах валюты.
	Price float64 `json:"price"`
	// Rating — средняя оценка; 0, если апстрим её не отдал.
	Rating float64 `json:"rating"`
	// Link — каноническая ссылка на карточку, выводится из ID.
	Link string `json:"link"`
	// Feedbacks — количество отзывов.
	Feedbacks int `json:"feedbacks"`
	// SubjectID — идентификатор категории.
	SubjectID int64 `json:"subject_id"`
	// Root — групповой идентификатор карточки; 0 — отсутствует.
	Root int64 `json:"root,omitempty"`
}

// Feedback — отзыв на карточку товара.
type Feedback struct {
	// ID — строковый идентификатор отзыва.
	ID string `json:"id"`
	// Text — основной текст отзыва.
	Text string `json:"text"`
	// Pros - достоинства.
	Pros string `json:"pros"`
	// Cons - недостатки.
	Cons string `json:"cons"`
	// Rating — оценка товара в отзыве (целая, поле productValuation апстрима).
	Rating int `json:"rating"`
	// CreatedAt — время создания отзыва; при отсутствии у апстрима — нулевой Unix epoch.
	CreatedAt time.Time `json:"created_date"`
	// UserName - имя автора, если апстрим его отдал.
	UserName string `json:"user_name,omitempty"`
	// ProductNM — групповой идентификатор карточки, под которым запрашивались отзывы.
	ProductNM int64 `json:"product_nm"`
}

// PriceRange — агрегированная статистика цен по поисковому запросу.
type PriceRange struct {
	Query string  `json:"query"`
	Min   float64 `json:"min_price"`
	Max   float64 `json:"max_price"`
	Avg   float64 `json:"avg_price"`
	Total int     `json:"total_products"`
	// Distribution — гистограмма из 5 равных корзин на интервале [0, max+100).
	Distribution map[string]int `json:"price_distribution,omitempty"`
}

// Alternatives — результат подбора альтернатив к товару.
type Alternatives struct {
	// Original — исходный товар, относительно которого шёл подбор.
	Original Product `json:"original_product"`
	// BetterPrice — до 3 более дешёвых альтернатив, по возрастанию цены.
	BetterPrice []Product `json:"better_price"`
	// BetterRating — до 3 альтернатив с не худшим рейтингом, по убыванию рейтинга.
	BetterRating []Product `json:"better_rating"`
}

// TopProducts — топ-3 по рейтингу среди дорогой и дешёвой выборок.
type TopProducts struct {
	TopExpensive []Product `json:"top_expensive"`
	TopCheap     []Product `json:"top_cheap"`
}

// Brand — идентификаторы продавца, полученные по ссылке на бренд.
type Brand struct {
	SupplierID int64 `json:"supplier_id"`
	SiteID     int64 `json:"site_id"`
}
