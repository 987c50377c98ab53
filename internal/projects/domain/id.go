package domain

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "02/01/2006" // pt-BR dd/mm/yyyy

// NewID derives a project id from the creation time in Unix milliseconds.
// When the value is taken, the next free millisecond is used.
func NewID(t time.Time, taken func(string) bool) string {
	ms := t.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if taken == nil || !taken(id) {
			return id
		}
		ms++
	}
}

// FormatDate renders t the way project dates are stored.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DefaultClientListName names a client list saved without a name.
func DefaultClientListName(niche string, t time.Time) string {
	return fmt.Sprintf("%s - %s", niche, FormatDate(t))
}
