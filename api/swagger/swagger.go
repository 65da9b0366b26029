package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "NextUp Mentor API",
        "description": "Packages, enrollments, messages, destinations and the chat assistant for the NextUp Mentor site.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "AdminToken": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Bearer token from /admin/login"
        }
    },
    "tags": [
        {
            "name": "Public",
            "description": "Site content and forms"
        },
        {
            "name": "Admin",
            "description": "Password-gated management"
        },
        {
            "name": "Chat",
            "description": "Assistant proxy"
        },
        {
            "name": "Currency",
            "description": "Display currency"
        },
        {
            "name": "Files",
            "description": "Local storage downloads"
        }
    ],
    "paths": {
        "/packages": {
            "get": {
                "tags": [
                    "Public"
                ],
                "summary": "List active packages",
                "parameters": [
                    {
                        "name": "currency",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "BDT",
                            "EUR"
                        ],
                        "description": "Display currency"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/packages/{id}": {
            "get": {
                "tags": [
                    "Public"
                ],
                "summary": "Get a package, including retired ones",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Package ID"
                    },
                    {
                        "name": "currency",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "BDT",
                            "EUR"
                        ],
                        "description": "Display currency"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/destinations": {
            "get": {
                "tags": [
                    "Public"
                ],
                "summary": "List study destinations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/payment-methods": {
            "get": {
                "tags": [
                    "Public"
                ],
                "summary": "List manual payment methods",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/messages": {
            "post": {
                "tags": [
                    "Public"
                ],
                "summary": "Send a contact message",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateMessageRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/enrollments": {
            "post": {
                "tags": [
                    "Public"
                ],
                "summary": "Submit a payment confirmation",
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "name": "student_name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "student_email",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "student_phone",
                        "in": "formData",
                        "type": "string"
                    },
                    {
                        "name": "package_id",
                        "in": "formData",
                        "type": "string"
                    },
                    {
                        "name": "package_title",
                        "in": "formData",
                        "type": "string"
                    },
                    {
                        "name": "amount",
                        "in": "formData",
                        "type": "integer"
                    },
                    {
                        "name": "transaction_id",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "payment_method",
                        "in": "formData",
                        "type": "string",
                        "enum": [
                            "bkash",
                            "nagad",
                            "bank"
                        ]
                    },
                    {
                        "name": "screenshot",
                        "in": "formData",
                        "type": "file",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created; meta.confirmation_delay_ms tells the client how long to show the confirmation",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Missing field or screenshot",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Storage rejected the upload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/chat": {
            "post": {
                "tags": [
                    "Chat"
                ],
                "summary": "Ask the assistant",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Reply",
                        "schema": {
                            "$ref": "#/definitions/ChatReply"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/ChatError"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/ChatError"
                        }
                    },
                    "503": {
                        "description": "Circuit open",
                        "schema": {
                            "$ref": "#/definitions/ChatError"
                        }
                    }
                }
            }
        },
        "/currency": {
            "get": {
                "tags": [
                    "Currency"
                ],
                "summary": "Current display currency",
                "parameters": [
                    {
                        "name": "currency",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "BDT",
                            "EUR"
                        ],
                        "description": "Display currency"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/currency/toggle": {
            "post": {
                "tags": [
                    "Currency"
                ],
                "summary": "Switch between BDT and EUR",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/files/{token}": {
            "get": {
                "tags": [
                    "Files"
                ],
                "summary": "Download a locally stored object",
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Signed token"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Unlock the admin dashboard",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AdminLoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Token issued",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Incorrect password",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Dashboard snapshot",
                "parameters": [
                    {
                        "name": "currency",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "BDT",
                            "EUR"
                        ],
                        "description": "Display currency"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/enrollments": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "List enrollments",
                "parameters": [
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "pending",
                            "verified",
                            "rejected"
                        ]
                    },
                    {
                        "name": "currency",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "BDT",
                            "EUR"
                        ],
                        "description": "Display currency"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/enrollments/export": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Export enrollments",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Attachment"
                    }
                }
            }
        },
        "/admin/enrollments/{id}": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Get enrollment",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enrollment ID"
                    },
                    {
                        "name": "currency",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "BDT",
                            "EUR"
                        ],
                        "description": "Display currency"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/enrollments/{id}/status": {
            "patch": {
                "tags": [
                    "Admin"
                ],
                "summary": "Verify or reject an enrollment",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enrollment ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateEnrollmentStatusRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Already finalized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/messages": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "List contact messages",
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/messages/{id}/status": {
            "patch": {
                "tags": [
                    "Admin"
                ],
                "summary": "Update message status",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Message ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateMessageStatusRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/packages": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "List active packages",
                "parameters": [
                    {
                        "name": "currency",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "BDT",
                            "EUR"
                        ],
                        "description": "Display currency"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Create package",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreatePackageRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/packages/{id}": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Get package",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Package ID"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Admin"
                ],
                "summary": "Update package",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Package ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdatePackageRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Admin"
                ],
                "summary": "Deactivate package",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Package ID"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deactivated"
                    }
                }
            }
        },
        "/admin/packages/images": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Upload package image",
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "name": "file",
                        "in": "formData",
                        "type": "file",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Uploaded",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/packages/images/{path}": {
            "delete": {
                "tags": [
                    "Admin"
                ],
                "summary": "Delete package image",
                "parameters": [
                    {
                        "name": "path",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Object path"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/admin/destinations": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "List destinations",
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Create destination",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateDestinationRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/destinations/{id}": {
            "put": {
                "tags": [
                    "Admin"
                ],
                "summary": "Update destination",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Destination ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateDestinationRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Admin"
                ],
                "summary": "Delete destination",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Destination ID"
                    }
                ],
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
            }
        },
        "ChatMessage": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                }
            }
        },
        "ChatRequest": {
            "type": "object",
            "properties": {
                "messages": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ChatMessage"
                    }
                }
            }
        },
        "ChatReply": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "ChatError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "AdminLoginRequest": {
            "type": "object",
            "required": [
                "password"
            ],
            "properties": {
                "password": {
                    "type": "string"
                }
            }
        },
        "CreateMessageRequest": {
            "type": "object",
            "required": [
                "name",
                "email",
                "message"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "destination": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "UpdateMessageStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "unread",
                        "read",
                        "replied"
                    ]
                }
            }
        },
        "UpdateEnrollmentStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "verified",
                        "rejected"
                    ]
                },
                "admin_notes": {
                    "type": "string"
                }
            }
        },
        "CreatePackageRequest": {
            "type": "object",
            "required": [
                "title"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "price": {
                    "type": "integer"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "is_popular": {
                    "type": "boolean"
                },
                "is_active": {
                    "type": "boolean"
                },
                "display_order": {
                    "type": "integer"
                }
            }
        },
        "CreateDestinationRequest": {
            "type": "object",
            "required": [
                "country"
            ],
            "properties": {
                "country": {
                    "type": "string"
                },
                "flag": {
                    "type": "string"
                },
                "university_count": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "highlights": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "UpdatePackageRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "price": {
                    "type": "integer"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "is_popular": {
                    "type": "boolean"
                },
                "is_active": {
                    "type": "boolean"
                },
                "display_order": {
                    "type": "integer"
                }
            }
        },
        "UpdateDestinationRequest": {
            "type": "object",
            "properties": {
                "country": {
                    "type": "string"
                },
                "flag": {
                    "type": "string"
                },
                "university_count": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "highlights": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
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
