package random

import (
	"strings"

	"github.com/bytedance/gopkg/lang/fastrand"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func RandStr(n int) string {
	sb := strings.Builder{}
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(charset[fastrand.Intn(len(charset))])
	}
	return sb.String()
}
