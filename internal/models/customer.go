package models

import "time"

type Customer struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CPF       string    `db:"cpf" json:"cpf"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewCustomer creates a customer with a fresh id
func NewCustomer(name, cpf, email, phone string) *Customer {
	now := GetCurrentTime()

	return &Customer{
		ID:        NewObjectID(),
		Name:      name,
		CPF:       cpf,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
