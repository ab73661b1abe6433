// Package docs registers the OpenAPI document served at /swagger/. It follows the
// layout swag init emits; keep it in step with the controller annotations.
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
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "data is an array of events", "schema": {"$ref": "#/definitions/controllers.EventListSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event data", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the created event", "schema": {"$ref": "#/definitions/controllers.EventSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event with its creator",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data is a one-element array", "schema": {"$ref": "#/definitions/controllers.EventDetailSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}/rsvps": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rsvps"],
                "summary": "List RSVPs of an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data is an array of RSVPs", "schema": {"$ref": "#/definitions/controllers.RSVPListSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rsvps"],
                "summary": "Create or update the current user's RSVP",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "eventID", "in": "path", "required": true},
                    {"description": "RSVP data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SubmitRSVPRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the stored RSVP", "schema": {"$ref": "#/definitions/controllers.RSVPSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}/rsvps/{rsvpID}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rsvps"],
                "summary": "Update an RSVP by id",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "eventID", "in": "path", "required": true},
                    {"type": "integer", "description": "RSVP ID", "name": "rsvpID", "in": "path", "required": true},
                    {"description": "Fields to set", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateRSVPRequest"}}
                ],
                "responses": {
                    "200": {"description": "data contains the updated RSVP or null", "schema": {"$ref": "#/definitions/controllers.RSVPSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.CreateEventRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "location": {"type": "string"},
                "location_type": {"type": "string"},
                "max_participants": {"type": "integer"},
                "is_private": {"type": "boolean"},
                "status": {"type": "string"},
                "creator_id": {"type": "integer"},
                "group_id": {"type": "integer"}
            }
        },
        "controllers.SubmitRSVPRequest": {
            "type": "object",
            "required": ["response_date", "status"],
            "properties": {
                "status": {"type": "string"},
                "response_date": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "controllers.UpdateRSVPRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "controllers.EventSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Event"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.EventListSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.EventDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "location": {"type": "string"},
                "location_type": {"type": "string"},
                "max_participants": {"type": "integer"},
                "is_private": {"type": "boolean"},
                "status": {"type": "string"},
                "creator_id": {"type": "integer"},
                "group_id": {"type": "integer"},
                "creator": {"$ref": "#/definitions/domain.UserSummary"}
            }
        },
        "controllers.EventDetailSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/controllers.EventDetail"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.RSVPSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.RSVP"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.RSVPListSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.RSVP"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "location": {"type": "string"},
                "location_type": {"type": "string"},
                "max_participants": {"type": "integer"},
                "is_private": {"type": "boolean"},
                "status": {"type": "string"},
                "creator_id": {"type": "integer"},
                "group_id": {"type": "integer"},
                "creator": {"$ref": "#/definitions/domain.UserSummary"}
            }
        },
        "domain.RSVP": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "event_id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "status": {"type": "string"},
                "response_date": {"type": "string"},
                "notes": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "firstname": {"type": "string"},
                "lastname": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
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
	Title:            "Event RSVP API",
	Description:      "Events and per-user RSVPs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
