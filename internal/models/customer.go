package models

import "time"

// Customer mirrors the dashboard's client table. The password hash never
// leaves the server.
type Customer struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FullName string `gorm:"size:100;not null" json:"nome_completo"`
	Phone    string `gorm:"size:20;uniqueIndex;not null" json:"telefone"`
	Email    string `gorm:"size:100" json:"email,omitempty"`

	PasswordHash string `gorm:"size:255" json:"-"`

	BirthDate     string `gorm:"size:10" json:"data_nascimento,omitempty"`
	Profession    string `gorm:"size:100" json:"profissao,omitempty"`
	MaritalStatus string `gorm:"size:30" json:"estado_civil,omitempty"`

	// Staff-dashboard vocabulary: "Sim" / "Não", empty when unanswered.
	HasChildren     string `gorm:"size:10" json:"tem_filhos,omitempty"`
	LikesSmallTalk  string `gorm:"size:10" json:"gosta_conversar,omitempty"`
	ReferralSource  string `gorm:"size:50" json:"como_soube,omitempty"`
	PreferredStaff  string `gorm:"size:100" json:"profissional_preferido,omitempty"`
	PreferredStyle  string `gorm:"size:100" json:"estilo_cabelo,omitempty"`
	PreferredDrink  string `gorm:"size:50" json:"tipo_bebida,omitempty"`
	StaffNotes      string `gorm:"size:255" json:"observacoes,omitempty"`

	IsVIP bool `gorm:"default:false" json:"is_vip"`

	RegisteredAt time.Time  `json:"data_cadastro"`
	LastAccessAt *time.Time `json:"ultimo_acesso,omitempty"`
}

// Sanitized returns a copy safe to cache client-side.
func (c Customer) Sanitized() Customer {
	c.PasswordHash = ""
	return c
}
