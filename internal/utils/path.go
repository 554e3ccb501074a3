package utils

import (
	"strings"
)

// JoinURLPath склеивает базовый адрес и путь ровно через один слэш
func JoinURLPath(prefix, suffix string) string {
	prefix = strings.TrimRight(prefix, "/")
	suffix = strings.TrimLeft(suffix, "/")
	return prefix + "/" + suffix
}
