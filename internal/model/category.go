package model

type Category struct {
	BaseModel
	ParentID    *string  `db:"parent_id" json:"parent_id"` // Nullable, self-reference
	Name        string   `db:"name" json:"name"`
	Description string   `db:"description" json:"description"`
	Image       string   `db:"image" json:"image"`
	ChildIDs    []string `db:"-" json:"children"` // Derived, not in DB
}
