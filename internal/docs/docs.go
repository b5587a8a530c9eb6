// Package docs holds the OpenAPI document of the order API and registers it
// with swag so echo-swagger can serve it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "servers": [{"url": "{{.BasePath}}"}],
  "paths": {
    "/orders": {
      "post": {
        "tags": ["orders"],
        "summary": "Create an order",
        "operationId": "createOrder",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/OrderRequest"}}}
        },
        "responses": {
          "201": {"description": "Order created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Order"}}}},
          "400": {"$ref": "#/components/responses/Error"}
        }
      },
      "get": {
        "tags": ["orders"],
        "summary": "List orders",
        "description": "Returns a page envelope when page >= 0 and size > 0, otherwise every order as a flat array.",
        "operationId": "getOrders",
        "parameters": [
          {"name": "page", "in": "query", "schema": {"type": "integer", "format": "int32", "default": 0}},
          {"name": "size", "in": "query", "schema": {"type": "integer", "format": "int32", "default": 20}},
          {"name": "sortBy", "in": "query", "schema": {"type": "string", "default": "createdAt",
            "enum": ["id", "customerName", "customerEmail", "productName", "quantity", "unitPrice", "totalAmount", "status", "createdAt", "updatedAt"]}},
          {"name": "sortDir", "in": "query", "schema": {"type": "string", "default": "desc", "enum": ["asc", "desc"]}}
        ],
        "responses": {
          "200": {
            "description": "Orders",
            "content": {"application/json": {"schema": {"oneOf": [
              {"$ref": "#/components/schemas/OrdersPage"},
              {"type": "array", "items": {"$ref": "#/components/schemas/Order"}}
            ]}}}
          },
          "400": {"$ref": "#/components/responses/Error"}
        }
      }
    },
    "/orders/{id}": {
      "parameters": [{"$ref": "#/components/parameters/OrderID"}],
      "get": {
        "tags": ["orders"],
        "summary": "Get an order",
        "operationId": "getOrder",
        "responses": {
          "200": {"description": "Order", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Order"}}}},
          "400": {"$ref": "#/components/responses/Error"},
          "404": {"$ref": "#/components/responses/Error"}
        }
      },
      "put": {
        "tags": ["orders"],
        "summary": "Replace every mutable field of an order",
        "operationId": "updateOrder",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/OrderRequest"}}}
        },
        "responses": {
          "200": {"description": "Order updated", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Order"}}}},
          "400": {"$ref": "#/components/responses/Error"},
          "404": {"$ref": "#/components/responses/Error"},
          "409": {"$ref": "#/components/responses/Error"},
          "422": {"$ref": "#/components/responses/Error"}
        }
      },
      "delete": {
        "tags": ["orders"],
        "summary": "Delete an order",
        "operationId": "deleteOrder",
        "responses": {
          "204": {"description": "Order deleted"},
          "400": {"$ref": "#/components/responses/Error"},
          "404": {"$ref": "#/components/responses/Error"}
        }
      }
    },
    "/orders/{id}/status": {
      "parameters": [{"$ref": "#/components/parameters/OrderID"}],
      "patch": {
        "tags": ["orders"],
        "summary": "Change the status of an order",
        "operationId": "updateOrderStatus",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/OrderStatus"}}}
        },
        "responses": {
          "200": {"description": "Order updated", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Order"}}}},
          "400": {"$ref": "#/components/responses/Error"},
          "404": {"$ref": "#/components/responses/Error"},
          "422": {"$ref": "#/components/responses/Error"}
        }
      }
    },
    "/orders/customer/{email}": {
      "get": {
        "tags": ["orders"],
        "summary": "Orders of a customer, matched case-insensitively",
        "operationId": "getOrdersByCustomerEmail",
        "parameters": [{"name": "email", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {
          "200": {"$ref": "#/components/responses/OrderList"},
          "400": {"$ref": "#/components/responses/Error"}
        }
      }
    },
    "/orders/status/{status}": {
      "get": {
        "tags": ["orders"],
        "summary": "Orders in a status",
        "operationId": "getOrdersByStatus",
        "parameters": [{"$ref": "#/components/parameters/Status"}],
        "responses": {
          "200": {"$ref": "#/components/responses/OrderList"},
          "400": {"$ref": "#/components/responses/Error"}
        }
      }
    },
    "/orders/date-range": {
      "get": {
        "tags": ["orders"],
        "summary": "Orders created inside an inclusive window",
        "operationId": "getOrdersByDateRange",
        "parameters": [
          {"name": "startDate", "in": "query", "required": true, "description": "yyyy-MM-ddTHH:mm:ss (UTC) or RFC 3339", "schema": {"type": "string"}},
          {"name": "endDate", "in": "query", "required": true, "description": "yyyy-MM-ddTHH:mm:ss (UTC) or RFC 3339", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/OrderList"},
          "400": {"$ref": "#/components/responses/Error"}
        }
      }
    },
    "/orders/count/status/{status}": {
      "get": {
        "tags": ["orders"],
        "summary": "Number of orders in a status",
        "operationId": "countOrdersByStatus",
        "parameters": [{"$ref": "#/components/parameters/Status"}],
        "responses": {
          "200": {
            "description": "Count",
            "content": {"application/json": {"schema": {
              "type": "object",
              "properties": {"status": {"$ref": "#/components/schemas/OrderStatus"}, "count": {"type": "integer", "format": "int64"}}
            }}}
          },
          "400": {"$ref": "#/components/responses/Error"}
        }
      }
    },
    "/orders/health": {
      "get": {
        "tags": ["health"],
        "summary": "Liveness probe",
        "operationId": "health",
        "responses": {
          "200": {
            "description": "Service is up",
            "content": {"application/json": {"schema": {
              "type": "object",
              "properties": {"status": {"type": "string"}, "service": {"type": "string"}, "timestamp": {"type": "string", "format": "date-time"}}
            }}}
          }
        }
      }
    }
  },
  "components": {
    "parameters": {
      "OrderID": {"name": "id", "in": "path", "required": true, "schema": {"type": "integer", "format": "int64", "minimum": 1}},
      "Status": {"name": "status", "in": "path", "required": true, "schema": {"$ref": "#/components/schemas/OrderStatus"}}
    },
    "responses": {
      "Error": {"description": "Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
      "OrderList": {
        "description": "Orders",
        "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Order"}}}}
      }
    },
    "schemas": {
      "OrderStatus": {
        "type": "string",
        "enum": ["PENDING", "CONFIRMED", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"]
      },
      "OrderRequest": {
        "type": "object",
        "required": ["customerName", "customerEmail", "productName", "quantity", "unitPrice", "shippingAddress"],
        "properties": {
          "customerName": {"type": "string", "minLength": 2, "maxLength": 100},
          "customerEmail": {"type": "string", "format": "email"},
          "productName": {"type": "string", "minLength": 1, "maxLength": 200},
          "quantity": {"type": "integer", "minimum": 1, "maximum": 1000},
          "unitPrice": {"type": "number", "minimum": 0.01, "maximum": 999999.99},
          "status": {"$ref": "#/components/schemas/OrderStatus"},
          "shippingAddress": {"type": "string", "minLength": 10, "maxLength": 500}
        }
      },
      "Order": {
        "type": "object",
        "properties": {
          "id": {"type": "integer", "format": "int64"},
          "customerName": {"type": "string"},
          "customerEmail": {"type": "string"},
          "productName": {"type": "string"},
          "quantity": {"type": "integer"},
          "unitPrice": {"type": "number"},
          "totalAmount": {"type": "number"},
          "status": {"$ref": "#/components/schemas/OrderStatus"},
          "shippingAddress": {"type": "string"},
          "createdAt": {"type": "string", "format": "date-time"},
          "updatedAt": {"type": "string", "format": "date-time"}
        }
      },
      "OrdersPage": {
        "type": "object",
        "properties": {
          "orders": {"type": "array", "items": {"$ref": "#/components/schemas/Order"}},
          "currentPage": {"type": "integer"},
          "totalItems": {"type": "integer", "format": "int64"},
          "totalPages": {"type": "integer"},
          "pageSize": {"type": "integer"},
          "hasNext": {"type": "boolean"},
          "hasPrevious": {"type": "boolean"}
        }
      },
      "Error": {
        "type": "object",
        "properties": {
          "timestamp": {"type": "string", "format": "date-time"},
          "status": {"type": "integer"},
          "error": {"type": "string"},
          "message": {"type": "string"},
          "path": {"type": "string"},
          "fieldErrors": {"type": "object", "additionalProperties": {"type": "string"}}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Order Management API",
	Description:      "Orders, their status lifecycle and filtered listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
