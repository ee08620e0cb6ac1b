package pricing

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateQuoteID — идентификатор квоты QT-<base36 timestamp>-<4 случайных
// base36 символа>. Случайный суффикс различает вызовы в одну миллисекунду.
func GenerateQuoteID(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)

	var b strings.Builder
	b.WriteString("QT-")
	b.WriteString(ts)
	b.WriteByte('-')
	for i := 0; i < 4; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return b.String()
}

// GenerateOrderID — идентификатор заказа оформления FC-WY-<base36 timestamp>
func GenerateOrderID(now time.Time) string {
	return "FC-WY-" + strconv.FormatInt(now.UnixMilli(), 36)
}
