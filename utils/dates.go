// utils/dates.go
package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in a JSON body. It accepts the plain YYYY-MM-DD
// form as well as a full RFC 3339 timestamp, and always holds midnight UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
		}
	}
	d.Time = DateOnly(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// DateOnly truncates a timestamp to its calendar date in UTC. Shoot dates,
// issued dates and due dates are stored this way so range filters compare
// whole days.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDateQuery reads an optional YYYY-MM-DD query parameter. Returns nil
// when the parameter is absent.
func ParseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", name)
	}
	return &t, nil
}
