package company

import "time"

// Company is a staffing agency operating in a single country.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CountryID int64     `json:"country_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
