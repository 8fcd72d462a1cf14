// Package docs registers the swagger document for the Medical News Portal
// API.
package docs

import "github.com/swaggo/swag"

// @title Medical News Portal API
// @version 1.0
// @description Read-only browsing API for bilingual medical news articles.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func init() {
	swag.Register(swag.Name, &swag.Spec{
		InfoInstanceName: "swagger",
		SwaggerTemplate:  docTemplate,
	})
}

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Medical News Portal API",
        "description": "Read-only browsing API for bilingual medical news articles.",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "paths": {
        "/articles": {
            "get": {
                "produces": ["application/json"],
                "summary": "Filtered news articles",
                "description": "Returns the rendered article cards matching the language, free-text query and tag.",
                "parameters": [
                    {
                        "type": "string",
                        "default": "english",
                        "description": "Display language (english or malayalam)",
                        "name": "lang",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Free-text search over the active language's title and description",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "default": "All",
                        "description": "Exact tag to filter by; All bypasses the filter",
                        "name": "tag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Filtered article cards",
                        "schema": {"type": "object"}
                    },
                    "503": {
                        "description": "News store unavailable",
                        "schema": {"type": "object"}
                    }
                }
            }
        },
        "/tags": {
            "get": {
                "produces": ["application/json"],
                "summary": "Tag dropdown values",
                "description": "Returns the All sentinel followed by the distinct tags observed in the store.",
                "responses": {
                    "200": {
                        "description": "Tag values",
                        "schema": {"type": "object"}
                    },
                    "503": {
                        "description": "News store unavailable",
                        "schema": {"type": "object"}
                    }
                }
            }
        }
    }
}`
