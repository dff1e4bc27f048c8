package example

import (
	"fmt"

	"github.com/google/uuid"

	"bizobj/interfaces"
)

// identified is shared by the business object interfaces of this package.
type identified interface {
	Id() uuid.UUID
}

type Customer interface {
	interfaces.BusinessObject
	identified
	Name() string
}

type customer struct {
	id   uuid.UUID
	name string
}

func NewCustomer(name string) Customer {
	return &customer{
		id:   uuid.New(),
		name: name,
	}
}

func (c *customer) Id() uuid.UUID {
	return c.id
}

func (c *customer) Name() string {
	return c.name
}

func (c *customer) ToDisplayString() string {
	return fmt.Sprintf("%s [%s]", c.name, shortId(c.id))
}

func shortId(id uuid.UUID) string {
	return id.String()[:8]
}
