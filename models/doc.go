/*
Package models defines request, response, and domain types shared by the
API client and the workflows.

# Request Types

Types marshalled as JSON to the backend:

  - RegisterRequest: nome, telefone, email
  - LoginRequest: nome, telefone
  - SaveListRequest: data (ISO-8601), itens

# Response Types

Types parsed from JSON responses:

  - AuthResponse: id, nome (id arrives as a JSON number)
  - SaveListResponse: listaId
  - ErrorBody: error, message

# Domain Types

  - User: the authenticated session identity (string id, display name)
  - Item: one shopping-list line (produto, valor, quantidade, supermercado)
  - Lista: a persisted list with owner, creation instant, and items

Field names in JSON tags follow the backend contract exactly and are
therefore Portuguese.

# Constants

Durable storage keys for the saved session:

	StorageKeyUserID   = "userId"
	StorageKeyUserNome = "userNome"
*/
package models
