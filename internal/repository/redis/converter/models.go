package converter

// RecentEntryRedisModel — формат хранения одной записи недавно просмотренных.
// Список сериализуется целиком как JSON-массив под одним ключом сессии.
type RecentEntryRedisModel struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Price    int64  `json:"price"`
}
