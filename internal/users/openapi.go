package users

import "github.com/JaimeStill/ots-portal/pkg/openapi"

type spec struct {
	List          *openapi.Operation
	Find          *openapi.Operation
	Create        *openapi.Operation
	Update        *openapi.Operation
	Delete        *openapi.Operation
	ResetPassword *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List users",
		Description: "Returns a paginated list of users",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches email and names)", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of users", "UserPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get user",
		Parameters: []*openapi.Parameter{
			openapi.IDParam("id", "User UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("User", "User"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create user",
		Description: "Registers a user. The password is stored as a bcrypt hash",
		RequestBody: openapi.RequestBodyJSON("CreateUserCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created user", "User"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary: "Update user",
		Parameters: []*openapi.Parameter{
			openapi.IDParam("id", "User UUID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateUserCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated user", "User"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary: "Delete user",
		Parameters: []*openapi.Parameter{
			openapi.IDParam("id", "User UUID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "User deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ResetPassword: &openapi.Operation{
		Summary: "Reset password",
		Parameters: []*openapi.Parameter{
			openapi.IDParam("id", "User UUID"),
		},
		RequestBody: openapi.RequestBodyJSON("ResetPasswordCommand", true),
		Responses: map[int]*openapi.Response{
			204: {Description: "Password replaced"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"email":      {Type: "string", Format: "email"},
				"first_name": {Type: "string"},
				"last_name":  {Type: "string"},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"UserPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("User")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"CreateUserCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"email":      {Type: "string", Format: "email"},
				"first_name": {Type: "string"},
				"last_name":  {Type: "string"},
				"password":   {Type: "string", Format: "password", MinLength: MinPasswordLength, MaxLength: 72},
			},
			Required: []string{"email", "password"},
		},
		"UpdateUserCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"email":      {Type: "string", Format: "email"},
				"first_name": {Type: "string"},
				"last_name":  {Type: "string"},
			},
			Required: []string{"email"},
		},
		"ResetPasswordCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"password": {Type: "string", Format: "password", MinLength: MinPasswordLength, MaxLength: 72},
			},
			Required: []string{"password"},
		},
	}
}
