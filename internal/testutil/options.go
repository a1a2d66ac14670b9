package testutil

import "time"

// personData holds one row of the people table.
type personData struct {
	id        string
	name      string
	gender    string
	age       *int
	district  string
	active    bool
	createdAt time.Time
}

func defaultPerson(id string) personData {
	return personData{
		id:        id,
		name:      id,
		active:    true,
		createdAt: time.Now(),
	}
}

// PersonOption configures a person during builder setup.
type PersonOption func(*personData)

func Name(name string) PersonOption {
	return func(p *personData) { p.name = name }
}

func Gender(g string) PersonOption {
	return func(p *personData) { p.gender = g }
}

// Age sets the age; people without one store NULL.
func Age(age int) PersonOption {
	return func(p *personData) { p.age = &age }
}

func District(d string) PersonOption {
	return func(p *personData) { p.district = d }
}

func Inactive() PersonOption {
	return func(p *personData) { p.active = false }
}

func CreatedAt(t time.Time) PersonOption {
	return func(p *personData) { p.createdAt = t }
}
