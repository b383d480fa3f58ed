// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/api/v1/crops": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List crops",
                "parameters": [{"type": "string", "description": "Season, e.g. Spring", "name": "season", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Crop"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/crops/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get crop",
                "parameters": [{"type": "string", "description": "Crop id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Crop"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/fish": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List fish",
                "parameters": [
                    {"type": "string", "name": "season", "in": "query"},
                    {"type": "string", "name": "weather", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Fish"}}}}
            }
        },
        "/api/v1/npcs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List NPCs or look one up",
                "parameters": [{"type": "string", "description": "Exact NPC name, any case", "name": "name", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.NPC"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/recipes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List recipes",
                "parameters": [{"type": "string", "name": "category", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Recipe"}}}}
            }
        },
        "/api/v1/mining": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List mining locations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.MiningLocation"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/bundles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List bundles",
                "parameters": [{"type": "string", "name": "room", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Bundle"}}}}
            }
        },
        "/api/v1/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Global name search",
                "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SearchResponse"}}}
            }
        },
        "/api/v1/planner/summary": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["planner"],
                "summary": "Summarize a planting plan",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PlannerSummaryRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/planner.Summary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "404": {"description": "Unknown crop", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Crop": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"},
            "season": {"type": "string"}, "growthTime": {"type": "integer"}, "regrowthTime": {"type": "integer"},
            "sellPrice": {"type": "integer"}, "seedPrice": {"type": "integer"}, "image": {"type": "string"}}},
        "domain.Fish": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"},
            "season": {"type": "string"}, "weather": {"type": "string"}, "location": {"type": "string"},
            "time": {"type": "string"}, "difficulty": {"type": "integer"}, "image": {"type": "string"}}},
        "domain.NPC": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "birthday": {"type": "string"}, "location": {"type": "string"},
            "loves": {"type": "array", "items": {"type": "string"}},
            "likes": {"type": "array", "items": {"type": "string"}},
            "hates": {"type": "array", "items": {"type": "string"}}, "image": {"type": "string"}}},
        "domain.Ingredient": {"type": "object", "properties": {"item": {"type": "string"}, "quantity": {"type": "integer"}}},
        "domain.Buff": {"type": "object", "properties": {"type": {"type": "string"}, "value": {"type": "string"}}},
        "domain.Recipe": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"},
            "ingredients": {"type": "array", "items": {"$ref": "#/definitions/domain.Ingredient"}},
            "buffs": {"type": "array", "items": {"$ref": "#/definitions/domain.Buff"}},
            "source": {"type": "string"}, "image": {"type": "string"}}},
        "domain.Section": {"type": "object", "properties": {
            "name": {"type": "string"}, "floors": {"type": "string"}, "theme": {"type": "string"},
            "monsters": {"type": "array", "items": {"type": "string"}}, "ores": {"type": "array", "items": {"type": "string"}},
            "gems": {"type": "array", "items": {"type": "string"}}, "geodes": {"type": "array", "items": {"type": "string"}},
            "notes": {"type": "string"}}},
        "domain.MiningLocation": {"type": "object", "properties": {
            "id": {"type": "string"}, "location": {"type": "string"}, "description": {"type": "string"}, "floors": {"type": "string"},
            "sections": {"type": "array", "items": {"$ref": "#/definitions/domain.Section"}}}},
        "domain.Bundle": {"type": "object", "properties": {
            "id": {"type": "string"}, "room": {"type": "string"}, "name": {"type": "string"}, "reward": {"type": "string"},
            "items": {"type": "array", "items": {"type": "string"}}}},
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}}},
        "handler.ValidationErrorResponse": {"type": "object", "properties": {
            "error": {"type": "string"}, "fields": {"type": "object", "additionalProperties": {"type": "string"}}}},
        "handler.SearchResponse": {"type": "object", "properties": {
            "query": {"type": "string"},
            "results": {"type": "array", "items": {"$ref": "#/definitions/catalog.SearchResult"}}}},
        "catalog.SearchResult": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "type": {"type": "string"}, "category": {"type": "string"}}},
        "handler.PlannerItemRequest": {"type": "object", "required": ["cropId"], "properties": {
            "cropId": {"type": "string", "maxLength": 100}, "quantity": {"type": "integer", "minimum": 1, "maximum": 100000}}},
        "handler.PlannerSummaryRequest": {"type": "object", "required": ["items"], "properties": {
            "items": {"type": "array", "maxItems": 200, "items": {"$ref": "#/definitions/handler.PlannerItemRequest"}}}},
        "planner.ItemSummary": {"type": "object", "properties": {
            "cropId": {"type": "string"}, "name": {"type": "string"}, "quantity": {"type": "integer"},
            "sellPrice": {"type": "integer"}, "seedPrice": {"type": "integer"},
            "investment": {"type": "integer"}, "revenue": {"type": "integer"}, "profit": {"type": "integer"}}},
        "planner.Totals": {"type": "object", "properties": {
            "investment": {"type": "integer"}, "revenue": {"type": "integer"}, "netProfit": {"type": "integer"}}},
        "planner.Summary": {"type": "object", "properties": {
            "items": {"type": "array", "items": {"$ref": "#/definitions/planner.ItemSummary"}},
            "totals": {"$ref": "#/definitions/planner.Totals"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Valley Companion API",
	Description:      "Read-only game data for crops, fish, villagers, recipes, mines and bundles, plus a planting profit calculator.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
