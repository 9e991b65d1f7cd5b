package wb

import (
	"regexp"
	"strconv"
)

var (
	reProductID = regexp.MustCompile(`/catalog/(\d+)/detail\.aspx`)
	reBrandName = regexp.MustCompile(`/brands/([^/]+)/all`)
)

// ProductIDFromLink извлекает числовой идентификатор товара из ссылки
// на карточку. Второе значение false — ссылка не распознана.
func ProductIDFromLink(link string) (int64, bool) {
	m := reProductID.FindStringSubmatch(link)
	if len(m) < 2 {
		return 0, false
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}

// BrandNameFromURL извлекает имя бренда из ссылки вида /brands/<name>/all.
func BrandNameFromURL(brandURL string) (string, bool) {
	m := reBrandName.FindStringSubmatch(brandURL)
	if len(m) < 2 {
		return "", false
	}

	return m[1], true
}
