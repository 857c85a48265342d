// Package models defines the client-side data model: random users as the
// remote API returns them, plus the parameters of a page request.
package models

import "fmt"

// Name is the user's name split the way the API reports it.
type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Picture holds portrait URLs. Thumbnails are not requested.
type Picture struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
}

type Street struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type Location struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
	Street  Street `json:"street"`
}

// User is a single random user. Values are treated as immutable.
type User struct {
	// ID is the synthetic key assigned by the local store. It is empty for
	// freshly decoded users and never sent over the wire.
	ID string `json:"-"`

	Name     Name     `json:"name"`
	Picture  Picture  `json:"picture"`
	Gender   string   `json:"gender"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Cell     string   `json:"cell"`
	Location Location `json:"location"`
}

// FullName returns title, first and last name separated by spaces.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s %s", u.Name.Title, u.Name.First, u.Name.Last)
}

// Accessibilities returns the ways the user can be reached.
func (u User) Accessibilities() string {
	return fmt.Sprintf("Contacts:\n\tEmail: %s\n\tCellphone: %s\n\tPhone: %s", u.Email, u.Cell, u.Phone)
}

// ExpandedLocation returns the user's address on two lines.
func (u User) ExpandedLocation() string {
	l := u.Location
	return fmt.Sprintf("Address:\n\t%s, %s, %s\n\tStreet %s %d", l.Country, l.State, l.City, l.Street.Name, l.Street.Number)
}

// Equal reports whether both users carry the same content. The synthetic ID
// is ignored.
func (u User) Equal(other User) bool {
	u.ID, other.ID = "", ""
	return u == other
}

// PageRequest selects one page of the remote feed.
type PageRequest struct {
	Page    int
	Results int
	Seed    string
}

func (r PageRequest) IsFirst() bool { return r.Page == 1 }

// NextPage returns the 1-based page that follows count already loaded
// users, given a fixed page size.
func NextPage(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	return count/pageSize + 1
}
