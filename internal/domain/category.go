package domain

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type CreateCategoryInput struct {
	Name string
	Icon string
}
