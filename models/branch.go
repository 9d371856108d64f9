package models

import "time"

type Branch struct {
	ID        string     `json:"id" bson:"_id" db:"id"`
	Name      string     `json:"name" bson:"name" db:"name"`
	Code      string     `json:"code" bson:"code" db:"code"`
	Address   string     `json:"address,omitempty" bson:"address,omitempty" db:"address"`
	Phone     string     `json:"phone,omitempty" bson:"phone,omitempty" db:"phone"`
	IsActive  bool       `json:"is_active" bson:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
