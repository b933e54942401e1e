package api

import (
	"time"

	reqdto "goexplorer/internal/handler/dto/request"
)

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := reqdto.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := reqdto.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}
