package model

import (
	"strings"
	"time"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

// Offset returns the row offset for the page, or 0 when paging is off.
func (p Paging) Offset() int {
	if p.Page <= 0 || p.PageSize <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Date accepts either RFC3339 timestamps or plain dates in JSON.
// A plain date stands for the last second of that day in UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return err
		}
		t = t.AddDate(0, 0, 1).Add(-time.Second)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}
