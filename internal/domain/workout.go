package domain

import "time"

// Workout es una referencia de solo lectura; este servicio no gestiona su contenido.
type Workout struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}
