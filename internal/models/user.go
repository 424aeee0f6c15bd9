package models

import "time"

// UserLogDoc registra el uso de la aplicación por username (colección users).
type UserLogDoc struct {
	Username  string    `json:"username" bson:"username"`
	Count     int       `json:"count" bson:"count"`
	FirstUsed time.Time `json:"first_used" bson:"first_used"`
	LastUsed  time.Time `json:"last_used" bson:"last_used"`
}

// ApplicationMetrics es el agregado del log de uso completo.
type ApplicationMetrics struct {
	NumUsers  int `json:"num_users"`
	TotalUses int `json:"total_uses"`
}
