package clean

import (
	"time"

	"markers"
)

type identified interface {
	Id() string
}

type Account interface {
	markers.BusinessObject
	identified
	Opened() time.Time
}

type Transfer interface {
	markers.BusinessObject
	identified
	From() Account
	To() Account
	Amount() int64
}

func TotalOut(account Account, transfers []Transfer) int64 {
	var total int64
	for _, t := range transfers {
		if t.From().Id() == account.Id() {
			total += t.Amount()
		}
	}
	return total
}
