package dao

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

// Clock maps a postgres "time" column onto domain.TimeOfDay.
type Clock domain.TimeOfDay

func (c Clock) Value() (driver.Value, error) {
	t := domain.TimeOfDay(c)
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second()), nil
}

func (c *Clock) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*c = Clock(domain.NewTimeOfDay(v.Hour(), v.Minute(), v.Second()))
		return nil
	case []byte:
		return c.parse(string(v))
	case string:
		return c.parse(v)
	default:
		return fmt.Errorf("dao.Clock: cannot scan %T", src)
	}
}

func (c *Clock) parse(s string) error {
	// Drop fractional seconds, the column carries at most microseconds.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return fmt.Errorf("dao.Clock -> %w", err)
	}
	*c = Clock(t)

	return nil
}
