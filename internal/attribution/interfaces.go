package attribution

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/service"
)

type Servicer interface {
	Attribute(ctx context.Context, args service.AttributeArgs) error
}
