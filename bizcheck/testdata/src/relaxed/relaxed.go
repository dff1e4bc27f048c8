package relaxed

import (
	"fmt"

	"markers"
)

type Item interface {
	markers.BusinessObject
	fmt.Stringer
}

type SpecialItem interface {
	Item // want `business object interface SpecialItem extends business object interface Item`
}

type Basket interface {
	markers.BusinessObject
	Items() []Item
	Indexed() map[string]Item
}
