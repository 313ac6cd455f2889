// Package swagger registers the OpenAPI document served at /swagger/*.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a pending member", "security": [], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in and receive a bearer token", "security": [], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Revoke the current session", "responses": {"204": {"description": "No Content"}}}},
        "/auth/me": {"get": {"tags": ["auth"], "summary": "Current member profile", "responses": {"200": {"description": "OK"}}}},
        "/auth/approve/{id}": {"post": {"tags": ["auth"], "summary": "Approve a pending member", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/books": {
            "get": {"tags": ["books"], "summary": "List books", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["books"], "summary": "Create book", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/books/genres": {"get": {"tags": ["books"], "summary": "Distinct genres", "responses": {"200": {"description": "OK"}}}},
        "/books/{id}": {
            "get": {"tags": ["books"], "summary": "Get book", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["books"], "summary": "Update book", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["books"], "summary": "Delete book", "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict"}}}
        },
        "/books/{id}/availability": {"put": {"tags": ["books"], "summary": "Set availability status", "responses": {"200": {"description": "OK"}}}},
        "/books/{id}/inventory": {"get": {"tags": ["books"], "summary": "Inventory log of a book", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/members": {
            "get": {"tags": ["members"], "summary": "List members", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["members"], "summary": "Create approved member", "responses": {"201": {"description": "Created"}}}
        },
        "/members/types": {"get": {"tags": ["members"], "summary": "Membership types", "responses": {"200": {"description": "OK"}}}},
        "/members/{id}": {
            "get": {"tags": ["members"], "summary": "Get member", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["members"], "summary": "Update member", "responses": {"200": {"description": "OK"}}}
        },
        "/members/{id}/deactivate": {"post": {"tags": ["members"], "summary": "Suspend member", "responses": {"200": {"description": "OK"}}}},
        "/members/{id}/reactivate": {"post": {"tags": ["members"], "summary": "Reactivate member", "responses": {"200": {"description": "OK"}}}},
        "/members/{id}/history": {"get": {"tags": ["members"], "summary": "Borrowing history", "responses": {"200": {"description": "OK"}}}},
        "/loans": {"get": {"tags": ["loans"], "summary": "List loans", "responses": {"200": {"description": "OK"}}}},
        "/loans/{id}": {"get": {"tags": ["loans"], "summary": "Get loan", "responses": {"200": {"description": "OK"}}}},
        "/loans/issue": {"post": {"tags": ["loans"], "summary": "Issue a loan", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}},
        "/loans/return/{loanID}": {"post": {"tags": ["loans"], "summary": "Return a loan", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/loans/renew/{loanID}": {"post": {"tags": ["loans"], "summary": "Renew a loan", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/loans/member/{id}/current": {"get": {"tags": ["loans"], "summary": "Active loans of a member", "responses": {"200": {"description": "OK"}}}},
        "/fees/pending": {"get": {"tags": ["fees"], "summary": "Pending fines", "responses": {"200": {"description": "OK"}}}},
        "/fees/member/{id}": {"get": {"tags": ["fees"], "summary": "Fines of a member", "responses": {"200": {"description": "OK"}}}},
        "/fees/member/{id}/summary": {"get": {"tags": ["fees"], "summary": "Fine totals of a member", "responses": {"200": {"description": "OK"}}}},
        "/fees/add": {"post": {"tags": ["fees"], "summary": "Add manual fine", "responses": {"201": {"description": "Created"}}}},
        "/fees/{id}": {
            "get": {"tags": ["fees"], "summary": "Get fine", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["fees"], "summary": "Update pending fine", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["fees"], "summary": "Delete pending fine", "responses": {"204": {"description": "No Content"}}}
        },
        "/fees/{id}/pay": {"post": {"tags": ["fees"], "summary": "Pay a fine", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/reports/dashboard": {"get": {"tags": ["reports"], "summary": "Dashboard counters", "responses": {"200": {"description": "OK"}}}},
        "/reports/borrowing-trends": {"get": {"tags": ["reports"], "summary": "Checkouts per day", "responses": {"200": {"description": "OK"}}}},
        "/reports/popular-books": {"get": {"tags": ["reports"], "summary": "Most borrowed books", "responses": {"200": {"description": "OK"}}}},
        "/reports/active-members": {"get": {"tags": ["reports"], "summary": "Most active members", "responses": {"200": {"description": "OK"}}}},
        "/reports/fines": {"get": {"tags": ["reports"], "summary": "Pending fines report", "responses": {"200": {"description": "OK"}}}},
        "/reports/events": {"get": {"tags": ["reports"], "summary": "Recorded circulation events", "responses": {"200": {"description": "OK"}}}},
        "/search": {"get": {"tags": ["search"], "summary": "Search books, members or transactions", "responses": {"200": {"description": "OK"}}}},
        "/openlibrary/search": {"get": {"tags": ["openlibrary"], "summary": "Search Open Library", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Library circulation API",
	Description:      "Catalog, membership, loans and fines.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
