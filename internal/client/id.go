package client

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	idPrefix     = "BK"
	idSuffixLen  = 5
	idSuffixBase = 36
)

// GenerateBookingID returns BK, the epoch milliseconds of now and five random
// upper-case base-36 characters.
func GenerateBookingID(now time.Time) string {
	return newBookingID(now, rand.Intn)
}

func newBookingID(now time.Time, intn func(int) int) string {
	var sb strings.Builder

	sb.WriteString(idPrefix)
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 10))

	for i := 0; i < idSuffixLen; i++ {
		sb.WriteString(strings.ToUpper(strconv.FormatInt(int64(intn(idSuffixBase)), idSuffixBase)))
	}

	return sb.String()
}
