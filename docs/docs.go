// Package docs registers the swagger document served under /swagger. It follows
// the layout of swag output and must be kept in sync with the handler annotations.
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
        "/fila": {
            "get": {
                "description": "Retorna todos os clientes ainda não atendidos, em ordem de posição",
                "produces": ["application/json"],
                "tags": ["fila"],
                "summary": "Listar fila",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/models.EntryView"}
                        }
                    }
                }
            },
            "put": {
                "description": "Atende o cliente da posição 1 e avança os demais uma posição",
                "produces": ["application/json"],
                "tags": ["fila"],
                "summary": "Atualizar fila",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.SuccessResponse"}
                    }
                }
            },
            "post": {
                "description": "Adiciona um cliente à fila. Clientes prioritários (P) entram logo após o último prioritário",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fila"],
                "summary": "Adicionar cliente",
                "parameters": [
                    {
                        "description": "Dados do cliente",
                        "name": "cliente",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.EnqueueRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/response.EnqueueResponse"}
                    },
                    "422": {
                        "description": "Dados inválidos (VALIDATION_ERROR)",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            }
        },
        "/fila/{id}": {
            "get": {
                "description": "Retorna o cliente que ocupa a posição informada",
                "produces": ["application/json"],
                "tags": ["fila"],
                "summary": "Cliente na posição",
                "parameters": [
                    {"type": "integer", "description": "Posição na fila", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.EntryView"}
                    },
                    "404": {
                        "description": "Nenhum cliente na posição (NOT_FOUND)",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    },
                    "422": {
                        "description": "Posição inválida (INVALID_POSITION)",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "description": "Remove o cliente da posição informada e reposiciona os que estavam atrás dele",
                "produces": ["application/json"],
                "tags": ["fila"],
                "summary": "Remover cliente",
                "parameters": [
                    {"type": "integer", "description": "Posição na fila", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.SuccessResponse"}
                    },
                    "404": {
                        "description": "Nenhum cliente na posição (NOT_FOUND)",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    },
                    "422": {
                        "description": "Posição inválida (INVALID_POSITION)",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            }
        },
        "/status/fila": {
            "get": {
                "description": "Quantidade de clientes aguardando, por tipo, e de clientes já atendidos",
                "produces": ["application/json"],
                "tags": ["fila"],
                "summary": "Resumo da fila",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.Stats"}
                    }
                }
            }
        },
        "/ws/fila": {
            "get": {
                "description": "Abre um websocket que recebe todos os eventos da fila",
                "tags": ["fila"],
                "summary": "Eventos da fila",
                "responses": {}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.EnqueueRequest": {
            "type": "object",
            "required": ["nome", "tipo_atendimento"],
            "properties": {
                "nome": {"type": "string", "maxLength": 20, "example": "Maria"},
                "tipo_atendimento": {"type": "string", "enum": ["N", "P"], "example": "P"}
            }
        },
        "models.EntryView": {
            "type": "object",
            "properties": {
                "data_chegada": {"type": "string"},
                "nome": {"type": "string", "example": "Maria"},
                "posicao": {"type": "integer", "example": 1}
            }
        },
        "models.Stats": {
            "type": "object",
            "properties": {
                "aguardando": {"type": "integer"},
                "atendidos": {"type": "integer"},
                "normais_aguardando": {"type": "integer"},
                "prioritarios_aguardando": {"type": "integer"},
                "revisao": {"type": "integer"}
            }
        },
        "response.EnqueueResponse": {
            "type": "object",
            "properties": {
                "mensagem": {"type": "string", "example": "Cliente adicionado com sucesso"},
                "posicao": {"type": "integer", "example": 3}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "response.SuccessResponse": {
            "type": "object",
            "properties": {
                "mensagem": {"type": "string", "example": "Fila atualizada com sucesso"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fila de atendimento",
	Description:      "Fila única com atendimento normal e prioritário",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
