package service

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Ключи кэша — детерминированные дайджесты от (вид операции, параметры
// запроса в каноническом порядке). Сам дайджест скрывает произвольные
// символы запроса и ограничивает длину ключа.

func searchKey(query, sort string, pages int) string {
	return digest(fmt.Sprintf("wb:search:%s:%s:%d", query, sort, pages))
}

func productKey(link string) string {
	return digest(fmt.Sprintf("wb:product:%s", link))
}

func feedbacksKey(productNM int64) string {
	return digest(fmt.Sprintf("wb:feedbacks:%d", productNM))
}

func supplierKey(supplierID int64, pages int) string {
	return digest(fmt.Sprintf("wb:supplier:%d:%d", supplierID, pages))
}

func brandKey(name string) string {
	return digest(fmt.Sprintf("wb:brand:%s", name))
}

func digest(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
