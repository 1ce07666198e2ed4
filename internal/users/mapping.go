package users

import (
	"github.com/JaimeStill/ots-portal/pkg/query"
	"github.com/JaimeStill/ots-portal/pkg/repository"
)

// Field names match the JSON keys so sort parameters read the same as responses.
var projection = query.
	NewProjectionMap("public", "users", "u").
	Project("id", "id").
	Project("email", "email").
	Project("first_name", "first_name").
	Project("last_name", "last_name").
	Project("created_at", "created_at").
	Project("updated_at", "updated_at")

var defaultSort = query.SortField{Field: "last_name"}

const returning = "RETURNING id, email, first_name, last_name, created_at, updated_at"

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID, &u.Email, &u.FirstName,
		&u.LastName, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}
