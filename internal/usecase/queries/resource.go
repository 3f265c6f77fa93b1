package queries

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/queries/resource_mock.go -package=queriesmock

import (
	"context"
	"strings"

	"campus-booking/internal/domain/resource"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"
)

type ResourceQueries interface {
	List(ctx context.Context, kind string) ([]ResourceView, error)
}

type resourceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewResourceQueries(uow shared.UnitOfWork) ResourceQueries {
	return &resourceQueriesImpl{uow: uow}
}

func (q *resourceQueriesImpl) List(ctx context.Context, kind string) ([]ResourceView, error) {
	var filter shared.ResourceFilter
	if strings.TrimSpace(kind) != "" {
		k, err := resource.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		filter.Kind = k
	}

	var views []ResourceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		resources, err := reads.Resources(ctx, filter)
		if err != nil {
			return errs.Wrap(err, "failed to list resources")
		}
		views = make([]ResourceView, 0, len(resources))
		for _, r := range resources {
			views = append(views, toResourceView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func toResourceView(r *resource.Resource) ResourceView {
	return ResourceView{
		ID:         r.ID(),
		Kind:       r.Kind().String(),
		Name:       r.Name(),
		Capacity:   r.Capacity(),
		SeatNumber: r.SeatNumber(),
	}
}
