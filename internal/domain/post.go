package domain

import "time"

// Post — запись блога витрины (только чтение, контент отдаёт удалённый API).
type Post struct {
	ID          int64
	Slug        string
	Title       string
	Excerpt     string
	ImageURL    string
	PublishedAt time.Time
}

// PostPage — страница блога с общим числом страниц.
type PostPage struct {
	Posts      []Post
	Page       int
	TotalPages int
}
