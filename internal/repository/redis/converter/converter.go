package converter

import "github.com/posh-choice/storefront-core/internal/domain"

// RecentEntryConverter конвертирует записи недавно просмотренных между
// доменным представлением и Redis-моделью хранения.
type RecentEntryConverter interface {
	ToRedisModel(entry domain.ProductSummary) RecentEntryRedisModel
	ToDomain(model RecentEntryRedisModel) domain.ProductSummary
	ToArrRedisModel(entries []domain.ProductSummary) []RecentEntryRedisModel
	ToArrDomain(models []RecentEntryRedisModel) []domain.ProductSummary
}

type recentEntryConverter struct{}

func NewRecentEntryConverter() RecentEntryConverter {
	return recentEntryConverter{}
}

func (recentEntryConverter) ToRedisModel(entry domain.ProductSummary) RecentEntryRedisModel {
	return RecentEntryRedisModel{
		ID:       entry.ID,
		Slug:     entry.Slug,
		Name:     entry.Name,
		ImageURL: entry.ImageURL,
		Price:    entry.Price,
	}
}

func (recentEntryConverter) ToDomain(model RecentEntryRedisModel) domain.ProductSummary {
	return domain.NewProductSummary(model.ID, model.Slug, model.Name, model.ImageURL, model.Price)
}

func (c recentEntryConverter) ToArrRedisModel(entries []domain.ProductSummary) []RecentEntryRedisModel {
	models := make([]RecentEntryRedisModel, 0, len(entries))
	for _, entry := range entries {
		models = append(models, c.ToRedisModel(entry))
	}

	return models
}

func (c recentEntryConverter) ToArrDomain(models []RecentEntryRedisModel) []domain.ProductSummary {
	entries := make([]domain.ProductSummary, 0, len(models))
	for _, model := range models {
		entries = append(entries, c.ToDomain(model))
	}

	return entries
}
