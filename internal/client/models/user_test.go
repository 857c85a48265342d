package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() User {
	return User{
		Name:    Name{Title: "Ms", First: "Jane", Last: "Doe"},
		Picture: Picture{Large: "https://img/l.jpg", Medium: "https://img/m.jpg"},
		Gender:  "female",
		Email:   "jane@example.com",
		Phone:   "01-234",
		Cell:    "05-678",
		Location: Location{
			Country: "Norway", State: "Oslo", City: "Oslo",
			Street: Street{Name: "Karl Johans gate", Number: 12},
		},
	}
}

func TestUser_DerivedStrings(t *testing.T) {
	u := sampleUser()

	assert.Equal(t, "Ms Jane Doe", u.FullName())
	assert.Equal(t, "Contacts:\n\tEmail: jane@example.com\n\tCellphone: 05-678\n\tPhone: 01-234", u.Accessibilities())
	assert.Equal(t, "Address:\n\tNorway, Oslo, Oslo\n\tStreet Karl Johans gate 12", u.ExpandedLocation())
}

func TestUser_EqualIgnoresID(t *testing.T) {
	a := sampleUser()
	b := sampleUser()
	a.ID = "one"
	b.ID = "two"
	assert.True(t, a.Equal(b))

	b.Email = "other@example.com"
	assert.False(t, a.Equal(b))
}

func TestUser_DecodesAPIPayload(t *testing.T) {
	payload := `{
		"gender": "male",
		"name": {"title": "Mr", "first": "Ole", "last": "Nordmann"},
		"location": {
			"street": {"number": 7, "name": "Storgata"},
			"city": "Bergen", "state": "Vestland", "country": "Norway", "postcode": "5003"
		},
		"email": "ole@example.com",
		"phone": "11", "cell": "22",
		"picture": {"large": "L", "medium": "M", "thumbnail": "T"}
	}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(payload), &u))

	assert.Empty(t, u.ID)
	assert.Equal(t, "Mr Ole Nordmann", u.FullName())
	assert.Equal(t, 7, u.Location.Street.Number)
	assert.Equal(t, "M", u.Picture.Medium)
}

func TestNextPage(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 10, 1},
		{9, 10, 1},
		{10, 10, 2},
		{14, 10, 2},
		{20, 10, 3},
		{5, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextPage(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func TestPageRequest_IsFirst(t *testing.T) {
	assert.True(t, PageRequest{Page: 1}.IsFirst())
	assert.False(t, PageRequest{Page: 2}.IsFirst())
}
