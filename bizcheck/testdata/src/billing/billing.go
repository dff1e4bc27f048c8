package billing

import (
	"fmt"

	"markers"
)

type named interface {
	Name() string
}

type Customer interface {
	markers.BusinessObject
	named
}

type PreferredCustomer interface {
	Customer // want `business object interface PreferredCustomer extends business object interface Customer`
	Discount() int
}

type Supplier interface {
	markers.BusinessObject
	fmt.Stringer // want `business object interface Supplier embeds exported interface fmt.Stringer; share properties through an unexported interface`
}

type Line interface {
	markers.BusinessObject
	Amount() int
}

type Lines []Line

type Page[T any] struct {
	items []T
}

type Order interface {
	markers.BusinessObject
	Customer() Customer
	Lines() []Line               // want `Order.Lines exposes a to-many relationship to Line; take the collection as a logic function parameter`
	ByCode() map[string]Line     // want `Order.ByCode exposes a to-many relationship to Line; take the collection as a logic function parameter`
	Grouped() Lines              // want `Order.Grouped exposes a to-many relationship to Line; take the collection as a logic function parameter`
	Paged() Page[Line]           // want `Order.Paged exposes a to-many relationship to Line; take the collection as a logic function parameter`
	Tags() []string
	Pointed() *[]Line // want `Order.Pointed exposes a to-many relationship to Line; take the collection as a logic function parameter`
	Shared() *Lines   // want `Order.Shared exposes a to-many relationship to Line; take the collection as a logic function parameter`
	Owner() *Customer
	Related() []markers.BusinessObject // want `Order.Related exposes a to-many relationship to markers.BusinessObject; take the collection as a logic function parameter`
}

// Not a business object interface, so its methods are not checked.
type Catalog interface {
	Lines() []Line
}
