package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All endpoints answer with a flat envelope: {"success": bool, ...payload}.
// List endpoints add count/total fields, failures add error/message.

// OK writes a 200 response merging payload into the success envelope.
func OK(c *gin.Context, payload gin.H) {
	respond(c, http.StatusOK, payload)
}

// Created writes a 201 response merging payload into the success envelope.
func Created(c *gin.Context, payload gin.H) {
	respond(c, http.StatusCreated, payload)
}

func respond(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes an error response with a machine-readable error code and a
// human-readable message.
func Fail(c *gin.Context, status int, errCode, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   errCode,
		"message": message,
	})
}

// FailValidation writes a 400 response enumerating every violated constraint.
func FailValidation(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success":  false,
		"error":    "VALIDATION_ERROR",
		"messages": messages,
	})
}

// Pagination holds pagination metadata for list responses.
type Pagination struct {
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// NewPagination computes pagination metadata from a total and page size.
func NewPagination(total, page, limit int) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return Pagination{
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
		Limit:       limit,
	}
}
