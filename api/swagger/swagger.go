package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Jadwal Darul Huda API",
        "description": "Weekly timetable and teacher roster service for the MTs and MA tiers of Ponpes Darul Huda.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedules", "description": "Per-tier weekly timetables and their mutations"},
        {"name": "Assignments", "description": "Teacher roster and subject catalogs"},
        {"name": "Conflicts", "description": "Cross-tier teacher double-booking report"},
        {"name": "Exports", "description": "Timetable downloads"},
        {"name": "Admin", "description": "Maintenance operations"}
    ],
    "paths": {
        "/schedules/{tier}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Get a tier's full weekly timetable",
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true, "description": "mts or ma"}
                ],
                "responses": {
                    "200": {"description": "Timetable with days in weekday order", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown tier", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{tier}/subject": {
            "patch": {
                "tags": ["Schedules"],
                "summary": "Set the subject of one class slot",
                "description": "Re-derives the slot's teacher from the roster and commits unconditionally. A detected double-booking is returned in meta.conflict, never as an error.",
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSubjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "Committed timetable, conflict warning in meta when present", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Day or time slot not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{tier}/time-slot": {
            "patch": {
                "tags": ["Schedules"],
                "summary": "Rename a row's time label",
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RenameTimeSlotRequest"}}
                ],
                "responses": {
                    "200": {"description": "Committed timetable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Day or time slot not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "New time label already exists in this day", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{tier}/days": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Add a new empty day",
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddDayRequest"}}
                ],
                "responses": {
                    "201": {"description": "Committed timetable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Day already exists", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{tier}/days/{day}": {
            "delete": {
                "tags": ["Schedules"],
                "summary": "Delete a day and all its rows",
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true},
                    {"name": "day", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Committed timetable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Day not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{tier}/days/{day}/rows": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Add an empty row to a day",
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true},
                    {"name": "day", "in": "path", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddRowRequest"}}
                ],
                "responses": {
                    "201": {"description": "Committed timetable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Day not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Time slot already exists", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Schedules"],
                "summary": "Delete a row from a day",
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true},
                    {"name": "day", "in": "path", "type": "string", "required": true},
                    {"name": "time", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Committed timetable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Day not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{tier}/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a tier's timetable as CSV or PDF",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "description": "csv (default) or pdf"}
                ],
                "responses": {
                    "200": {"description": "Rendered file"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List teaching assignments",
                "parameters": [
                    {"name": "tier", "in": "query", "type": "string", "description": "Optional tier filter (mts or ma)"}
                ],
                "responses": {
                    "200": {"description": "Assignments sorted by teacher code", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Assignments"],
                "summary": "Create a teaching assignment",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created assignment", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assignments/{id}": {
            "put": {
                "tags": ["Assignments"],
                "summary": "Update a teaching assignment",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated assignment", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Assignment not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Assignments"],
                "summary": "Delete a teaching assignment",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Assignment not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects/{tier}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List the subject catalog for a tier",
                "parameters": [
                    {"name": "tier", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Assignable subjects plus structural labels", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/conflicts": {
            "get": {
                "tags": ["Conflicts"],
                "summary": "Report teacher double-bookings across both tiers",
                "responses": {
                    "200": {"description": "Conflict records, composite keys in meta", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/reset": {
            "post": {
                "tags": ["Admin"],
                "summary": "Wipe all persisted schedules and the teacher roster",
                "responses": {
                    "200": {"description": "Reset done", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "UpdateSubjectRequest": {
            "type": "object",
            "required": ["day", "time", "class_level"],
            "properties": {
                "day": {"type": "string"},
                "time": {"type": "string"},
                "class_level": {"type": "string", "enum": ["A", "B", "C"]},
                "subject": {"type": "string"}
            }
        },
        "RenameTimeSlotRequest": {
            "type": "object",
            "required": ["day", "old_time", "new_time"],
            "properties": {
                "day": {"type": "string"},
                "old_time": {"type": "string"},
                "new_time": {"type": "string"}
            }
        },
        "AddDayRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "AddRowRequest": {
            "type": "object",
            "required": ["time"],
            "properties": {
                "time": {"type": "string"}
            }
        },
        "AssignmentRequest": {
            "type": "object",
            "required": ["teacher_code", "teacher_name", "subject_name"],
            "properties": {
                "teacher_code": {"type": "string"},
                "teacher_name": {"type": "string"},
                "subject_name": {"type": "string"},
                "teaches_in_mts": {"type": "boolean"},
                "teaches_in_ma": {"type": "boolean"}
            }
        },
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
