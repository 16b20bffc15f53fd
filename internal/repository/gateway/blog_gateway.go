package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/posh-choice/storefront-core/internal/domain"
)

// BlogGateway — записи блога витрины, только чтение.
type BlogGateway struct {
	client *Client
}

func NewBlogGateway(client *Client) *BlogGateway {
	return &BlogGateway{client: client}
}

func (g *BlogGateway) ListPosts(ctx context.Context, page, limit int) (*domain.PostPage, error) {
	const op = "BlogGateway.ListPosts"

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var model postPageModel
	if err := g.client.get(ctx, op, "/blog", params, &model); err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}
