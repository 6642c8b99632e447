package models

// Etapa is the formation stage of a community. The set is fixed: rows are
// seeded by the initial migration and the API never writes to the table.
type Etapa struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"uniqueIndex;not null" json:"nome"`
}

// Carisma is a spiritual-focus classification. Communities reference carismas
// through their embedded association list, not through a join table.
type Carisma struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"uniqueIndex;not null" json:"nome"`
}
