package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Planner API",
        "description": "Requirement eligibility, demand and schedule conflict engine",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Staff login"},
        {"name": "Catalog", "description": "Prerequisite chain catalog"},
        {"name": "Planning", "description": "Needs matrix, demand and conflict reports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate staff user",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/catalog/chains": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List prerequisite chains",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Catalog unavailable"}
                }
            }
        },
        "/catalog/chains/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "One prerequisite chain",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown chain"}
                }
            }
        },
        "/planning/needs": {
            "get": {
                "tags": ["Planning"],
                "summary": "Needs matrix",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Catalog unavailable"}
                }
            }
        },
        "/planning/needs/{id}": {
            "get": {
                "tags": ["Planning"],
                "summary": "Needs for one student",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Student not found"}
                }
            }
        },
        "/planning/needs/export": {
            "get": {
                "tags": ["Planning"],
                "summary": "Export the needs matrix",
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/planning/demand": {
            "get": {
                "tags": ["Planning"],
                "summary": "Course demand ranking",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/planning/demand/refresh": {
            "post": {
                "tags": ["Planning"],
                "summary": "Drop the cached demand ranking",
                "responses": {
                    "204": {"description": "Cache dropped"}
                }
            }
        },
        "/planning/demand/export": {
            "get": {
                "tags": ["Planning"],
                "summary": "Export the demand ranking",
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/planning/conflicts": {
            "get": {
                "tags": ["Planning"],
                "summary": "Schedule conflicts",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Catalog unavailable"}
                }
            }
        },
        "/planning/conflicts/export": {
            "get": {
                "tags": ["Planning"],
                "summary": "Export the conflict report",
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
