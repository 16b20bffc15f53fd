package domain

// Image — одно изображение продукта (хостинг внешний, храним только URL)
type Image struct {
	URL string
}

// Product описывает продукт так, как его отдаёт удалённый storefront API.
// Цены хранятся в минорных единицах валюты.
type Product struct {
	ID            int64
	Slug          string
	Name          string
	Price         int64
	OnSale        bool
	DiscountPct   float64 // 0-100
	SalePrice     int64   // заполнено только при OnSale
	StockQuantity int
	Images        []Image
	CategoryID    int64
	CategorySlug  string
	Rating        float64 // 0-5
	NumReviews    int
}

// EffectivePrice возвращает цену с учётом скидки.
func (p *Product) EffectivePrice() int64 {
	if p.OnSale {
		return p.SalePrice
	}

	return p.Price
}

// MainImageURL возвращает первое изображение продукта или пустую строку.
func (p *Product) MainImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0].URL
}

// Summary сворачивает продукт в компактное представление для результатов поиска
// и списка недавно просмотренных.
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ID:       p.ID,
		Slug:     p.Slug,
		Name:     p.Name,
		ImageURL: p.MainImageURL(),
		Price:    p.EffectivePrice(),
	}
}

// ProductSummary — подмножество полей продукта: результат поиска,
// элемент списка недавно просмотренных.
type ProductSummary struct {
	ID       int64
	Slug     string
	Name     string
	ImageURL string
	Price    int64
}

// ProductPage — страница каталога с общим числом страниц.
type ProductPage struct {
	Products   []Product
	Page       int
	TotalPages int
}

func NewProductSummary(id int64, slug, name, imageURL string, price int64) ProductSummary {
	return ProductSummary{
		ID:       id,
		Slug:     slug,
		Name:     name,
		ImageURL: imageURL,
		Price:    price,
	}
}
