// Package docs registers the generated OpenAPI document with swag so the
// Swagger UI route can serve it. Regenerate with `swag init -g cmd/server/main.go`.
package docs

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
    "paths": {
        "/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Create an account",
                "operationId": "register",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Open a session",
                "operationId": "login",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Close the session",
                "operationId": "logout",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/user/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current account",
                "operationId": "me",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/chat": {
            "post": {
                "tags": ["Chat"],
                "summary": "Send a chat message",
                "operationId": "chat",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"},
                    "502": {"description": "Bad Gateway"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/weather/{location}": {
            "get": {
                "tags": ["Travel"],
                "summary": "Weather for a location",
                "operationId": "getWeather",
                "parameters": [
                    {"name": "location", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/cultural-info/{location}": {
            "get": {
                "tags": ["Travel"],
                "summary": "Cultural information for a location",
                "operationId": "getCulturalInfo",
                "parameters": [
                    {"name": "location", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/transportation/{location}": {
            "get": {
                "tags": ["Travel"],
                "summary": "Transportation options for a location",
                "operationId": "getTransportation",
                "parameters": [
                    {"name": "location", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/generate-image": {
            "post": {
                "tags": ["Travel"],
                "summary": "Generate a location image",
                "operationId": "generateImage",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/favorites": {
            "get": {
                "tags": ["Favorites"],
                "summary": "List saved locations",
                "operationId": "listFavorites",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "tags": ["Favorites"],
                "summary": "Save a location",
                "operationId": "createFavorite",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/favorites/{id}": {
            "delete": {
                "tags": ["Favorites"],
                "summary": "Remove a saved location",
                "operationId": "deleteFavorite",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/user/history": {
            "get": {
                "tags": ["History"],
                "summary": "List search history (paginated)",
                "operationId": "listHistory",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "per_page", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "304": {"description": "Not Modified"},
                    "401": {"description": "Unauthorized"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Travel Assistant API",
	Description:      "Conversational travel assistant: intent-routed chat, weather, cultural info, transportation, favorites, and search history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
