package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// Wire format for all date-only fields.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// ParseDateRangeQuery reads the optional start_date/end_date query params.
// Either bound may be absent; a present but malformed one is an error.
func ParseDateRangeQuery(c *fiber.Ctx) (start, end *time.Time, err error) {
	if raw := c.Query("start_date"); raw != "" {
		t, perr := ParseDate(raw)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, perr := ParseDate(raw)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}
	return start, end, nil
}

// AgeAt is locale-naive calendar age.
func AgeAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}
