package models

import "time"

// Role специализация ответчика
type Role string

const (
	RoleMedical  Role = "medical"
	RolePolice   Role = "police"
	RoleFire     Role = "fire"
	RoleTraffic  Role = "traffic"
	RoleDisaster Role = "disaster"
)

var roleCategories = map[Role][]Category{
	RoleMedical:  {CategoryMedical},
	RolePolice:   {CategoryCrime},
	RoleFire:     {CategoryFire},
	RoleTraffic:  {CategoryAccident},
	RoleDisaster: AllCategories,
}

func (r Role) Valid() bool {
	_, ok := roleCategories[r]
	return ok
}

// Categories категории инцидентов, которые видит роль
func (r Role) Categories() []Category {
	return roleCategories[r]
}

// Responder зарегистрированный ответчик
type Responder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	ProofRef  *string   `json:"proof_ref,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// User заявитель или голосующий
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
