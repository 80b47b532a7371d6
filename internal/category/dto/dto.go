package dto

type CategoryResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	ParentID    *string  `json:"parentId"`
	Children    []string `json:"children"`
}
