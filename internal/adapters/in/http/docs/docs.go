// Package docs registers the Swagger 2.0 document served under /swagger/*.
// It mirrors the swag annotations on the handlers in package http.
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
        "/packages/sort": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "packages"
                ],
                "summary": "Sort a package given as query parameters",
                "parameters": [
                    {
                        "minimum": 0,
                        "type": "integer",
                        "format": "uint64",
                        "description": "Width",
                        "name": "width",
                        "in": "query",
                        "required": true
                    },
                    {
                        "minimum": 0,
                        "type": "integer",
                        "format": "uint64",
                        "description": "Height",
                        "name": "height",
                        "in": "query",
                        "required": true
                    },
                    {
                        "minimum": 0,
                        "type": "integer",
                        "format": "uint64",
                        "description": "Length",
                        "name": "length",
                        "in": "query",
                        "required": true
                    },
                    {
                        "minimum": 0,
                        "type": "integer",
                        "format": "uint64",
                        "description": "Mass",
                        "name": "mass",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.SortPackageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "packages"
                ],
                "summary": "Sort a package given as JSON body",
                "parameters": [
                    {
                        "description": "Package measurements",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.SortPackageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.SortPackageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.Error": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer",
                    "example": 400
                },
                "field": {
                    "type": "string",
                    "example": "width"
                },
                "message": {
                    "type": "string",
                    "example": "Invalid width: expecting a value of 1 or more, but got 0"
                },
                "value": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "http.SortPackageRequest": {
            "type": "object",
            "properties": {
                "height": {
                    "type": "integer",
                    "example": 1
                },
                "length": {
                    "type": "integer",
                    "example": 1
                },
                "mass": {
                    "type": "integer",
                    "example": 20
                },
                "width": {
                    "type": "integer",
                    "example": 148
                }
            }
        },
        "http.SortPackageResponse": {
            "type": "object",
            "properties": {
                "result": {
                    "type": "string",
                    "enum": [
                        "standard",
                        "special",
                        "rejected"
                    ],
                    "example": "rejected"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Package sorting API",
	Description:      "Sorts packages into standard, special or rejected by dimensions and mass.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
