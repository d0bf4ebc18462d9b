// Package entities contains core business entities.
package entities

import "time"

// Team groups users and tasks under a shared name. Members and Tasks hold
// identifiers from the join tables; deleting a team removes only those rows.
type Team struct {
	ID          string
	Name        string
	Description string
	Members     []string
	Tasks       []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
