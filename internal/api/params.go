package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// parseDay reads YYYY-MM-DD as a calendar day of the server's user clock. Empty input gives zero time.
func (s *Server) parseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	day, err := time.ParseInLocation(dayLayout, value, s.clock.Location())
	if err != nil {
		return time.Time{}, errors.New("invalid day " + strconv.Quote(value) + ", expected YYYY-MM-DD")
	}
	return day, nil
}

// dayRange reads from/to query parameters.
func (s *Server) dayRange(r *http.Request) (time.Time, time.Time, error) {
	from, err := s.parseDay(r.URL.Query().Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := s.parseDay(r.URL.Query().Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, errors.New("from is after to")
	}
	return from, to, nil
}
