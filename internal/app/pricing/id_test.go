package pricing_test

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"holdco-backend/internal/app/pricing"

	"github.com/stretchr/testify/require"
)

var quoteIDRe = regexp.MustCompile(`^QT-[0-9a-z]+-[0-9a-z]{4}$`)

func TestGenerateQuoteID_Format(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	id := pricing.GenerateQuoteID(now)

	require.Regexp(t, quoteIDRe, id)
	require.Contains(t, id, strconv.FormatInt(now.UnixMilli(), 36))
}

func TestGenerateQuoteID_SuffixVaries(t *testing.T) {
	// одна и та же миллисекунда: различие только в случайном суффиксе
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[pricing.GenerateQuoteID(now)] = true
	}
	require.Greater(t, len(seen), 1)
}

func TestGenerateOrderID_Format(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	id := pricing.GenerateOrderID(now)

	require.Equal(t, "FC-WY-"+strconv.FormatInt(now.UnixMilli(), 36), id)
}
