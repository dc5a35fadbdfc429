package model

import "time"

// NavPoint is one dated NAV observation for a fund.
type NavPoint struct {
	Date time.Time
	Nav  float64
}
