package status

import (
	"fmt"
	"strings"
)

// Status is the freshness label of a product. It is always derived from the
// product's quantity and days to expire and never stored.
type Status string

// Statuses.
const (
	OK         Status = "OK"
	Soon       Status = "SOON"
	Expired    Status = "EXPIRED"
	OutOfStock Status = "OUT_OF_STOCK"
)

// SoonThreshold is the largest number of remaining days still classified as SOON.
const SoonThreshold = 3

// Classify returns the status for a product with the given on-hand quantity
// and remaining shelf life in days. A nil daysToExpire means expiry is not
// tracked. Rules are checked in order and the first match wins.
func Classify(quantity int, daysToExpire *int) Status {
	switch {
	case quantity <= 0:
		return OutOfStock
	case daysToExpire == nil:
		return OK
	case *daysToExpire < 0:
		return Expired
	case *daysToExpire <= SoonThreshold:
		return Soon
	default:
		return OK
	}
}

// All returns every status, most severe first.
func All() []Status {
	return []Status{OutOfStock, Expired, Soon, OK}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case OK, Soon, Expired, OutOfStock:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Parse converts a label such as "soon" or "OUT_OF_STOCK" into a Status.
func Parse(label string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(label)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", label)
	}
	return s, nil
}
