package entity

import "time"

// Department representa un sector (padaria, açougue, hortifruti...). Nombre único.
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
