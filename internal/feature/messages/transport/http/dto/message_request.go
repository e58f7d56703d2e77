// Package dto defines data transfer objects for the messages feature's HTTP
// transport layer.
package dto

// MessageReq represents the request body for the POST /messages endpoint.
type MessageReq struct {
	Text string `json:"text" binding:"required,max=4096"`
}
