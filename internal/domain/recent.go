package domain

// RecencyCapacity — максимальная длина списка недавно просмотренных.
const RecencyCapacity = 10

// sameProduct сравнивает записи по идентификатору или slug.
func sameProduct(a, b ProductSummary) bool {
	if a.ID != 0 && b.ID != 0 {
		return a.ID == b.ID
	}

	return a.Slug != "" && a.Slug == b.Slug
}

// PushRecent вставляет запись в начало списка недавно просмотренных:
// прежнее вхождение того же продукта удаляется, список усекается до capacity.
// Исходный срез не модифицируется.
func PushRecent(list []ProductSummary, entry ProductSummary, capacity int) []ProductSummary {
	if capacity <= 0 {
		capacity = RecencyCapacity
	}

	result := make([]ProductSummary, 0, len(list)+1)
	result = append(result, entry)
	for _, existing := range list {
		if sameProduct(existing, entry) {
			continue
		}
		result = append(result, existing)
	}

	if len(result) > capacity {
		result = result[:capacity]
	}

	return result
}
