// Package docs describes the notification API.
// Regenerate with swag init after changing handler annotations.
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
		"/notifications": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"notifications"
				],
				"summary": "Get user notifications",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Number of notifications to return (max 100)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Offset for pagination",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"description": "Newest-first notifications for the authenticated user"
			}
		},
		"/notifications/ws": {
			"get": {
				"tags": [
					"notifications"
				],
				"summary": "Live notifications",
				"description": "WebSocket feed of new notifications. Browsers pass the token as a query parameter.",
				"parameters": [
					{
						"type": "string",
						"description": "JWT access token",
						"name": "token",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"101": {
						"description": "Switching Protocols"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"entity.Notification": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"userId": {
					"type": "integer"
				},
				"type": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"actorId": {
					"type": "integer"
				},
				"subjectId": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "yadig Notification API",
	Description:      "Inbox and live feed of social notifications",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
