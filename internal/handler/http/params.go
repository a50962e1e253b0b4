package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// parseIntCSV parses a comma separated id list. Blank and unparseable
// entries are skipped rather than rejected, so a sloppy query string narrows
// less instead of erroring.
func parseIntCSV(s string) []int64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// parseCodeCSV parses a comma separated code list, skipping blanks.
func parseCodeCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var codes []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		codes = append(codes, part)
	}
	return codes
}

// parseTimeParam accepts RFC 3339 or a bare date.
func parseTimeParam(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func queryParam(r *http.Request, key string) string {
	return r.URL.Query().Get(key)
}
