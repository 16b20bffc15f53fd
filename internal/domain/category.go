package domain

// Category описывает категорию каталога
type Category struct {
	ID   int64
	Slug string
	Name string
}

func NewCategory(id int64, slug, name string) *Category {
	return &Category{
		ID:   id,
		Slug: slug,
		Name: name,
	}
}
