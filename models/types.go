package models

import (
	"encoding/json"
	"time"
)

// Durable storage keys for the saved session identity.
// Same keys the web front-end used in localStorage.
const (
	StorageKeyUserID   = "userId"
	StorageKeyUserNome = "userNome"
)

// Request types

type RegisterRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

// SaveListRequest is the POST /api/listas body. Data is the ISO-8601
// creation instant derived from the America/Sao_Paulo wall clock.
type SaveListRequest struct {
	Data  string `json:"data"`
	Itens []Item `json:"itens"`
}

// Response types

// AuthResponse is returned by both /api/users and /api/login. The backend
// sends the id as a JSON number; the session stores it as a string.
type AuthResponse struct {
	ID   json.Number `json:"id"`
	Nome string      `json:"nome"`
}

type SaveListResponse struct {
	ListaID int64 `json:"listaId"`
}

// ErrorBody is the backend's error envelope. The users/login endpoints fill
// "message", the listas endpoints fill "error".
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Domain types

// User is the authenticated session identity.
type User struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// Item is one line of a shopping list. In a draft the ID comes from a
// client-side monotonic counter; in a persisted list it comes from the
// backend.
type Item struct {
	ID           int64   `json:"id"`
	Produto      string  `json:"produto"`
	Valor        float64 `json:"valor"`
	Quantidade   int     `json:"quantidade"`
	Supermercado string  `json:"supermercado"`
}

// Lista is a persisted shopping list as returned by GET /api/listas.
type Lista struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	UserNome *string   `json:"userNome"`
	Data     time.Time `json:"data"`
	Itens    []Item    `json:"itens"`
}
